package pgsql

import (
	"context"
	"fmt"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	"github.com/golder/bank_statements_api/internal/models"
	"github.com/golder/bank_statements_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

// FindAttachmentByID retrieves an attachment including its bytes.
func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.Attachment, error) {
	query := `
		SELECT attachment_id, owner_kind, owner_id, name, description, mimetype, data, created_at, created_by
		FROM attachments
		WHERE attachment_id = $1;`

	var m models.Attachment
	err := r.Pool.QueryRow(ctx, query, attachmentID).Scan(
		&m.AttachmentID,
		&m.OwnerKind,
		&m.OwnerID,
		&m.Name,
		&m.Description,
		&m.MimeType,
		&m.Data,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find attachment by ID %d", attachmentID))
	}
	attachment := mapping.ToDomainAttachment(m)
	return &attachment, nil
}

// ListImageAttachmentsByOwners returns image attachment metadata grouped by owner id.
// Bytes are not loaded.
func (r *PgxAttachmentRepository) ListImageAttachmentsByOwners(ctx context.Context, kind domain.OwnerKind, ownerIDs []int64) (map[int64][]domain.Attachment, error) {
	result := make(map[int64][]domain.Attachment)
	if len(ownerIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT attachment_id, owner_kind, owner_id, name, description, mimetype, created_at, created_by
		FROM attachments
		WHERE owner_kind = $1 AND owner_id = ANY($2) AND mimetype LIKE 'image/%'
		ORDER BY owner_id, attachment_id;`

	rows, err := r.Pool.Query(ctx, query, string(kind), ownerIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Attachment
		if err := rows.Scan(&m.AttachmentID, &m.OwnerKind, &m.OwnerID, &m.Name, &m.Description, &m.MimeType, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row", err)
		}
		result[m.OwnerID] = append(result[m.OwnerID], mapping.ToDomainAttachment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows", err)
	}
	return result, nil
}

// SaveAttachment inserts a new attachment and returns its id.
func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) (int64, error) {
	m := mapping.ToModelAttachment(attachment)
	query := `
		INSERT INTO attachments (owner_kind, owner_id, name, description, mimetype, data, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING attachment_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.OwnerKind, m.OwnerID, m.Name, m.Description, m.MimeType, m.Data, m.CreatedAt, m.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to save attachment for %s %d", m.OwnerKind, m.OwnerID), err)
	}
	return id, nil
}
