package services

import (
	"context"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/dto"
)

// JournalReaderSvc defines public read operations over journals
type JournalReaderSvc interface {
	// ListBalances returns the latest ending balance of every public journal and their total.
	ListBalances(ctx context.Context) (*domain.BalanceReport, error)

	// ListPublicJournals returns every public journal with its latest statement.
	ListPublicJournals(ctx context.Context) ([]domain.JournalOverview, error)
}

// JournalWriterSvc defines back-office write operations over journals
type JournalWriterSvc interface {
	// SetVisibility toggles the public flag of a journal and sets its slug.
	SetVisibility(ctx context.Context, journalID int64, req dto.SetJournalVisibilityRequest, userID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
