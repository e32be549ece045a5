package dto

import (
	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementLineRequest is one line of a statement as typed in by back-office staff.
type StatementLineRequest struct {
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	PaymentRef string          `json:"payment_ref" binding:"max=255"`
	Amount     decimal.Decimal `json:"amount"`
}

// StatementRequest creates or replaces a statement and its lines.
type StatementRequest struct {
	Name                string                 `json:"name" binding:"required,max=64"`
	Date                string                 `json:"date" binding:"required,datetime=2006-01-02"`
	BalanceStart        *decimal.Decimal       `json:"balance_start"`
	BalanceEndReal      decimal.Decimal        `json:"balance_end_real"`
	PreviousStatementID *int64                 `json:"previous_statement_id" binding:"omitempty,gt=0"`
	Lines               []StatementLineRequest `json:"lines" binding:"dive"`
}

// ReconcileResponse reports the outcome of a reconcile action.
type ReconcileResponse struct {
	Status         string          `json:"status"`
	StatementID    int64           `json:"statement_id"`
	LineCount      int             `json:"line_count"`
	BalanceStart   decimal.Decimal `json:"balance_start"`
	BalanceEnd     decimal.Decimal `json:"balance_end"`
	BalanceEndReal decimal.Decimal `json:"balance_end_real"`
	Mismatch       bool            `json:"mismatch"`
}

// AttachmentUploadResponse is returned after storing a statement image.
type AttachmentUploadResponse struct {
	Status   string `json:"status"`
	ID       int64  `json:"id"`
	MimeType string `json:"mimetype"`
}

// ToReconcileResponse converts a domain.ReconcileResult to ReconcileResponse DTO.
func ToReconcileResponse(r *domain.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Status:         StatusOK,
		StatementID:    r.StatementID,
		LineCount:      r.LineCount,
		BalanceStart:   r.BalanceStart,
		BalanceEnd:     r.BalanceEnd,
		BalanceEndReal: r.BalanceEndReal,
		Mismatch:       r.Mismatch,
	}
}
