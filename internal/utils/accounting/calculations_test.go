package accounting_test

import (
	"testing"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amountLines(amounts ...string) []domain.StatementLine {
	lines := make([]domain.StatementLine, len(amounts))
	for i, a := range amounts {
		lines[i] = domain.StatementLine{LineID: int64(i + 1), Amount: decimal.RequireFromString(a)}
	}
	return lines
}

func TestAlignedEndingBalance(t *testing.T) {
	tests := []struct {
		name  string
		start string
		lines []domain.StatementLine
		want  string
	}{
		{name: "fee and deposit", start: "100", lines: amountLines("-10", "50"), want: "140"},
		{name: "no lines keeps start", start: "12.34", lines: nil, want: "12.34"},
		{name: "negative result", start: "0", lines: amountLines("-25.50", "-0.50"), want: "-26"},
		{name: "keeps precision", start: "0.001", lines: amountLines("0.0001"), want: "0.0011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.AlignedEndingBalance(decimal.RequireFromString(tt.start), tt.lines)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestAlignedEndingBalance_OrderIndependent(t *testing.T) {
	forward := amountLines("1.10", "-3.25", "7", "0.15")
	backward := []domain.StatementLine{forward[3], forward[2], forward[1], forward[0]}

	a := accounting.AlignedEndingBalance(decimal.Zero, forward)
	b := accounting.AlignedEndingBalance(decimal.Zero, backward)
	assert.True(t, a.Equal(b))
}

func TestAuthoritativeStart(t *testing.T) {
	statement := domain.Statement{BalanceStart: decimal.NewFromInt(100)}

	assert.True(t, decimal.NewFromInt(100).Equal(accounting.AuthoritativeStart(statement, nil)))

	previous := &domain.Statement{BalanceEnd: decimal.RequireFromString("87.65"), BalanceEndReal: decimal.NewFromInt(1)}
	assert.True(t, decimal.RequireFromString("87.65").Equal(accounting.AuthoritativeStart(statement, previous)))
}

// Without a previous statement the declared opening balance is kept rather than reset to zero,
// so a first statement typed in with start 100 and lines -10, +50 ends at 140.
func TestAuthoritativeStart_FirstStatementKeepsDeclaredStart(t *testing.T) {
	first := domain.Statement{BalanceStart: decimal.NewFromInt(100)}

	start := accounting.AuthoritativeStart(first, nil)

	assert.False(t, start.IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(start))
	assert.True(t, decimal.NewFromInt(140).Equal(accounting.AlignedEndingBalance(start, amountLines("-10", "50"))))
	assert.True(t, accounting.AuthoritativeStart(domain.Statement{}, nil).IsZero())
}

func TestTotalBalance(t *testing.T) {
	statements := []domain.Statement{
		{BalanceEnd: decimal.RequireFromString("140.00")},
		{BalanceEnd: decimal.RequireFromString("25.50")},
	}
	assert.Equal(t, "165.5", accounting.TotalBalance(statements).String())
	assert.True(t, accounting.TotalBalance(nil).IsZero())
}
