package mapping

import (
	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/models"
)

// ToModelAttachment converts a domain Attachment to a model Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID: d.AttachmentID,
		OwnerKind:    string(d.Owner.Kind),
		OwnerID:      d.Owner.ID,
		Name:         d.Name,
		Description:  d.Description,
		MimeType:     d.MimeType,
		Data:         d.Data,
		CreatedAt:    d.CreatedAt,
		CreatedBy:    d.CreatedBy,
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID: m.AttachmentID,
		Owner:        domain.OwnerRef{Kind: domain.OwnerKind(m.OwnerKind), ID: m.OwnerID},
		Name:         m.Name,
		Description:  m.Description,
		MimeType:     m.MimeType,
		Data:         m.Data,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
	}
}
