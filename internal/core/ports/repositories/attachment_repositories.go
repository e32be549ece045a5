package repositories

import (
	"context"

	"github.com/golder/bank_statements_api/internal/core/domain"
)

// AttachmentReader defines read operations for attachments
type AttachmentReader interface {
	// FindAttachmentByID retrieves an attachment including its bytes.
	FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.Attachment, error)

	// ListImageAttachmentsByOwners returns image attachment metadata (no bytes) grouped by owner id.
	ListImageAttachmentsByOwners(ctx context.Context, kind domain.OwnerKind, ownerIDs []int64) (map[int64][]domain.Attachment, error)
}

// AttachmentWriter defines write operations for attachments
type AttachmentWriter interface {
	// SaveAttachment persists a new attachment and returns its id.
	SaveAttachment(ctx context.Context, attachment domain.Attachment) (int64, error)
}

// AttachmentRepositoryFacade combines all attachment-related repository interfaces
type AttachmentRepositoryFacade interface {
	AttachmentReader
	AttachmentWriter
}

// ConfigParamReader looks up key/value configuration stored alongside the data.
type ConfigParamReader interface {
	// GetParam returns the value stored for key, or apperrors.ErrNotFound.
	GetParam(ctx context.Context, key string) (string, error)
}
