package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Statement is a row of the statements table.
type Statement struct {
	StatementID         int64           `db:"statement_id"`
	JournalID           int64           `db:"journal_id"`
	Name                string          `db:"name"`
	StatementDate       time.Time       `db:"statement_date"`
	BalanceStart        decimal.Decimal `db:"balance_start"`
	BalanceEnd          decimal.Decimal `db:"balance_end"`
	BalanceEndReal      decimal.Decimal `db:"balance_end_real"`
	PreviousStatementID sql.NullInt64   `db:"previous_statement_id"` // Nullable self reference
	AuditFields
}

// StatementLine is a row of the statement_lines table.
type StatementLine struct {
	LineID      int64           `db:"line_id"`
	StatementID int64           `db:"statement_id"`
	LineDate    time.Time       `db:"line_date"`
	PaymentRef  string          `db:"payment_ref"`
	Amount      decimal.Decimal `db:"amount"` // Signed
	Sequence    int             `db:"sequence"`
	CreatedAt   time.Time       `db:"created_at"`
}
