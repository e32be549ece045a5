package dto

import (
	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceEntry is the latest balance of one public journal.
type BalanceEntry struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	BalanceEnd  decimal.Decimal `json:"balance_end"`
	JournalID   int64           `json:"journal_id"`
	JournalName string          `json:"journal_name"`
	PublicSlug  *string         `json:"public_slug"`
}

// BalancesResponse is returned by GET /bank/balances.
type BalancesResponse struct {
	Status       string          `json:"status"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Balances     []BalanceEntry  `json:"balances"`
}

// JournalSummary is one entry of GET /bank/journals.
type JournalSummary struct {
	ID              int64                     `json:"id"`
	Name            string                    `json:"name"`
	PublicSlug      *string                   `json:"public_slug"`
	LatestStatement *StatementSummaryResponse `json:"latest_statement"`
}

// JournalsResponse is returned by GET /bank/journals.
type JournalsResponse struct {
	Status   string           `json:"status"`
	Journals []JournalSummary `json:"journals"`
}

// SetJournalVisibilityRequest toggles whether a journal is exposed publicly.
type SetJournalVisibilityRequest struct {
	PublicCanView *bool   `json:"public_can_view" binding:"required"`
	PublicSlug    *string `json:"public_slug" binding:"omitempty,slug"`
}

// JournalResponse is returned by the back-office journal endpoints.
type JournalResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	PublicCanView bool    `json:"public_can_view"`
	PublicSlug    *string `json:"public_slug"`
}

// ToBalancesResponse converts a domain.BalanceReport to BalancesResponse DTO.
func ToBalancesResponse(report *domain.BalanceReport) BalancesResponse {
	balances := make([]BalanceEntry, len(report.Balances))
	for i, s := range report.Balances {
		balances[i] = BalanceEntry{
			ID:          s.StatementID,
			Name:        s.Name,
			BalanceEnd:  s.BalanceEnd,
			JournalID:   s.JournalID,
			JournalName: s.JournalName,
			PublicSlug:  s.PublicSlug,
		}
	}
	return BalancesResponse{
		Status:       StatusOK,
		TotalBalance: report.TotalBalance,
		Balances:     balances,
	}
}

// ToJournalsResponse converts journal overviews to JournalsResponse DTO.
func ToJournalsResponse(overviews []domain.JournalOverview) JournalsResponse {
	journals := make([]JournalSummary, len(overviews))
	for i, o := range overviews {
		summary := JournalSummary{
			ID:         o.Journal.JournalID,
			Name:       o.Journal.Name,
			PublicSlug: o.Journal.PublicSlug,
		}
		if o.Latest != nil {
			latest := ToStatementSummaryResponse(*o.Latest)
			summary.LatestStatement = &latest
		}
		journals[i] = summary
	}
	return JournalsResponse{Status: StatusOK, Journals: journals}
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		ID:            j.JournalID,
		Name:          j.Name,
		PublicCanView: j.PublicCanView,
		PublicSlug:    j.PublicSlug,
	}
}
