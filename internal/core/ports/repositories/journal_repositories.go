package repositories

import (
	"context"
	"time"

	"github.com/golder/bank_statements_api/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// ListPublicJournals retrieves every journal flagged as publicly viewable, ordered by id.
	ListPublicJournals(ctx context.Context) ([]domain.Journal, error)

	// FindPublicJournalBySlug retrieves a publicly viewable journal by its slug.
	// Private journals are reported as apperrors.ErrNotFound.
	FindPublicJournalBySlug(ctx context.Context, slug string) (*domain.Journal, error)

	// FindJournalByID retrieves a journal regardless of its visibility (back-office use).
	FindJournalByID(ctx context.Context, journalID int64) (*domain.Journal, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// UpdateJournalVisibility sets the public flag and slug of a journal.
	// A slug already used by another public journal yields apperrors.ErrDuplicate.
	UpdateJournalVisibility(ctx context.Context, journalID int64, publicCanView bool, publicSlug *string, updatedBy string, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
