package services

import (
	"context"

	"github.com/golder/bank_statements_api/internal/core/domain"
)

// AttachmentSvc serves and stores statement images.
type AttachmentSvc interface {
	// GetPublicImage returns an attachment with its bytes only when it is an image owned by a
	// statement of a public journal. Every other case is apperrors.ErrNotFound.
	GetPublicImage(ctx context.Context, attachmentID int64) (*domain.Attachment, error)

	// ImageLinks returns public image metadata for the given statements, keyed by statement id.
	ImageLinks(ctx context.Context, statementIDs []int64) (map[int64][]domain.AttachmentLink, error)

	// UploadStatementImage stores an image for a statement.
	UploadStatementImage(ctx context.Context, statementID int64, name, description string, data []byte, userID string) (*domain.Attachment, error)
}
