package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is a dated snapshot of a journal's balance plus the lines since the previous statement.
type Statement struct {
	StatementID         int64           `json:"statementID"`
	JournalID           int64           `json:"journalID"`
	Name                string          `json:"name"`
	Date                time.Time       `json:"date"`
	BalanceStart        decimal.Decimal `json:"balanceStart"`
	BalanceEnd          decimal.Decimal `json:"balanceEnd"`     // Computed by the reconciler
	BalanceEndReal      decimal.Decimal `json:"balanceEndReal"` // Declared by back-office staff
	PreviousStatementID *int64          `json:"previousStatementID,omitempty"`
	AuditFields
	Lines []StatementLine `json:"lines,omitempty"` // Loaded separately
}

// StatementLine is one transaction entry within a statement.
type StatementLine struct {
	LineID      int64           `json:"lineID"`
	StatementID int64           `json:"statementID"`
	Date        time.Time       `json:"date"`
	PaymentRef  string          `json:"paymentRef"`
	Amount      decimal.Decimal `json:"amount"` // Signed
	Sequence    int             `json:"sequence"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// LineSequence assigns a display sequence number to a statement line.
type LineSequence struct {
	LineID   int64
	Sequence int
}

// ReconcileResult summarises one reconcile run over a statement.
type ReconcileResult struct {
	StatementID    int64           `json:"statementID"`
	LineCount      int             `json:"lineCount"`
	BalanceStart   decimal.Decimal `json:"balanceStart"`
	BalanceEnd     decimal.Decimal `json:"balanceEnd"`
	BalanceEndReal decimal.Decimal `json:"balanceEndReal"`
	Mismatch       bool            `json:"mismatch"` // Computed ending differs from the declared one
}

// StatementSummary pairs a statement with the journal it belongs to.
type StatementSummary struct {
	Statement
	JournalName string  `json:"journalName"`
	PublicSlug  *string `json:"publicSlug,omitempty"`
}
