package mapping

import (
	"database/sql"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	m := models.Journal{
		JournalID:     d.JournalID,
		Name:          d.Name,
		PublicCanView: d.PublicCanView,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.PublicSlug != nil {
		m.PublicSlug = sql.NullString{String: *d.PublicSlug, Valid: true}
	}
	return m
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	d := domain.Journal{
		JournalID:     m.JournalID,
		Name:          m.Name,
		PublicCanView: m.PublicCanView,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.PublicSlug.Valid {
		slug := m.PublicSlug.String
		d.PublicSlug = &slug
	}
	return d
}

// ToDomainJournalSlice converts a slice of model Journals to a slice of domain Journals
func ToDomainJournalSlice(ms []models.Journal) []domain.Journal {
	ds := make([]domain.Journal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournal(m)
	}
	return ds
}
