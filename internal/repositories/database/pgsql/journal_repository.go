package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	"github.com/golder/bank_statements_api/internal/models"
	"github.com/golder/bank_statements_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalColumns = `journal_id, name, public_can_view, public_slug,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.Name,
		&m.PublicCanView,
		&m.PublicSlug,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListPublicJournals retrieves every publicly viewable journal ordered by id.
func (r *PgxJournalRepository) ListPublicJournals(ctx context.Context) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + `
		FROM journals
		WHERE public_can_view
		ORDER BY journal_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query public journals", err)
	}
	defer rows.Close()

	journals := []models.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		journals = append(journals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	return mapping.ToDomainJournalSlice(journals), nil
}

// FindPublicJournalBySlug retrieves a publicly viewable journal by slug.
func (r *PgxJournalRepository) FindPublicJournalBySlug(ctx context.Context, slug string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + `
		FROM journals
		WHERE public_can_view AND public_slug = $1;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, notFoundOr(err, "failed to find journal by slug "+slug)
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// FindJournalByID retrieves a journal by its ID regardless of visibility.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID int64) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + `
		FROM journals
		WHERE journal_id = $1;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find journal by ID %d", journalID))
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// UpdateJournalVisibility sets the public flag and slug of a journal.
func (r *PgxJournalRepository) UpdateJournalVisibility(ctx context.Context, journalID int64, publicCanView bool, publicSlug *string, updatedBy string, now time.Time) error {
	query := `
		UPDATE journals
		SET public_can_view = $2, public_slug = $3, last_updated_at = $4, last_updated_by = $5
		WHERE journal_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, journalID, publicCanView, publicSlug, now, updatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: public slug already in use", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update visibility of journal %d", journalID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
