package dto

import (
	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementSummaryResponse is the short form of a statement.
type StatementSummaryResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Date       string          `json:"date"`
	BalanceEnd decimal.Decimal `json:"balance_end"`
	JournalID  int64           `json:"journal_id"`
}

// StatementsResponse is returned by GET /bank/statements.
type StatementsResponse struct {
	Status         string                     `json:"status"`
	BankStatements []StatementSummaryResponse `json:"bank_statements"`
}

// StatementHeader carries the balances of one statement.
type StatementHeader struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Date         string          `json:"date"`
	BalanceStart decimal.Decimal `json:"balance_start"`
	BalanceEnd   decimal.Decimal `json:"balance_end"`
}

// StatementLineResponse is one line of a statement in display order.
type StatementLineResponse struct {
	Date       string          `json:"date"`
	PaymentRef string          `json:"payment_ref"`
	Amount     decimal.Decimal `json:"amount"`
	Sequence   int             `json:"sequence"`
}

// AttachmentResponse is the public metadata of an image attachment.
type AttachmentResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// StatementWithAttachments is one entry of GET /bank/statements/{slug}.
type StatementWithAttachments struct {
	StatementHeader
	Attachments []AttachmentResponse `json:"attachments"`
}

// JournalStatementsResponse is returned by GET /bank/statements/{slug}.
type JournalStatementsResponse struct {
	Status         string                     `json:"status"`
	PublicSlug     string                     `json:"public_slug"`
	BankStatements []StatementWithAttachments `json:"bank_statements"`
}

// StatementDetailResponse is returned by GET /bank/statements/{slug}/{id}.
type StatementDetailResponse struct {
	Status      string                  `json:"status"`
	Header      StatementHeader         `json:"header"`
	Lines       []StatementLineResponse `json:"lines"`
	Attachments []AttachmentResponse    `json:"attachments"`
}

// ToStatementSummaryResponse converts a domain.Statement to StatementSummaryResponse DTO.
func ToStatementSummaryResponse(s domain.Statement) StatementSummaryResponse {
	return StatementSummaryResponse{
		ID:         s.StatementID,
		Name:       s.Name,
		Date:       s.Date.Format(dateFormat),
		BalanceEnd: s.BalanceEnd,
		JournalID:  s.JournalID,
	}
}

// ToStatementsResponse converts statement summaries to StatementsResponse DTO.
func ToStatementsResponse(summaries []domain.StatementSummary) StatementsResponse {
	statements := make([]StatementSummaryResponse, len(summaries))
	for i, s := range summaries {
		statements[i] = ToStatementSummaryResponse(s.Statement)
	}
	return StatementsResponse{Status: StatusOK, BankStatements: statements}
}

// ToStatementHeader converts a domain.Statement to StatementHeader DTO.
func ToStatementHeader(s domain.Statement) StatementHeader {
	return StatementHeader{
		ID:           s.StatementID,
		Name:         s.Name,
		Date:         s.Date.Format(dateFormat),
		BalanceStart: s.BalanceStart,
		BalanceEnd:   s.BalanceEnd,
	}
}

// ToAttachmentResponses converts attachment links to AttachmentResponse DTOs.
func ToAttachmentResponses(links []domain.AttachmentLink) []AttachmentResponse {
	responses := make([]AttachmentResponse, len(links))
	for i, l := range links {
		responses[i] = AttachmentResponse{ID: l.AttachmentID, Description: l.Description, URL: l.URL}
	}
	return responses
}

// ToJournalStatementsResponse converts statement views of one journal to JournalStatementsResponse DTO.
func ToJournalStatementsResponse(slug string, views []domain.StatementView) JournalStatementsResponse {
	statements := make([]StatementWithAttachments, len(views))
	for i, v := range views {
		statements[i] = StatementWithAttachments{
			StatementHeader: ToStatementHeader(v.Statement),
			Attachments:     ToAttachmentResponses(v.Attachments),
		}
	}
	return JournalStatementsResponse{Status: StatusOK, PublicSlug: slug, BankStatements: statements}
}

// ToStatementDetailResponse converts a domain.StatementView to StatementDetailResponse DTO.
func ToStatementDetailResponse(v *domain.StatementView) StatementDetailResponse {
	lines := make([]StatementLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = StatementLineResponse{
			Date:       l.Date.Format(dateFormat),
			PaymentRef: l.PaymentRef,
			Amount:     l.Amount,
			Sequence:   l.Sequence,
		}
	}
	return StatementDetailResponse{
		Status:      StatusOK,
		Header:      ToStatementHeader(v.Statement),
		Lines:       lines,
		Attachments: ToAttachmentResponses(v.Attachments),
	}
}
