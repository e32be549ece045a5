package accounting

import (
	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumLineAmounts adds up the signed amounts of the given lines.
func SumLineAmounts(lines []domain.StatementLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	return total
}

// AlignedEndingBalance returns start plus the sum of all line amounts.
// No rounding is applied beyond the precision the amounts already carry.
func AlignedEndingBalance(start decimal.Decimal, lines []domain.StatementLine) decimal.Decimal {
	return start.Add(SumLineAmounts(lines))
}

// AuthoritativeStart picks the starting balance a statement should carry.
// The previous statement's reconciled ending balance wins when there is one;
// otherwise the statement keeps its own declared starting balance.
func AuthoritativeStart(statement domain.Statement, previous *domain.Statement) decimal.Decimal {
	if previous != nil {
		return previous.BalanceEnd
	}
	return statement.BalanceStart
}

// TotalBalance sums the ending balances of the given statements.
func TotalBalance(statements []domain.Statement) decimal.Decimal {
	total := decimal.Zero
	for _, s := range statements {
		total = total.Add(s.BalanceEnd)
	}
	return total
}
