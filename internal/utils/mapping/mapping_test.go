package mapping_test

import (
	"testing"
	"time"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalMapping_NullableSlug(t *testing.T) {
	slug := "bank"
	public := domain.Journal{JournalID: 1, Name: "Bank", PublicCanView: true, PublicSlug: &slug}
	private := domain.Journal{JournalID: 2, Name: "Cash"}

	m := mapping.ToModelJournal(public)
	assert.True(t, m.PublicSlug.Valid)
	assert.Equal(t, public, mapping.ToDomainJournal(m))

	m = mapping.ToModelJournal(private)
	assert.False(t, m.PublicSlug.Valid)
	assert.Nil(t, mapping.ToDomainJournal(m).PublicSlug)
}

func TestStatementMapping_PreviousStatement(t *testing.T) {
	prev := int64(7)
	s := domain.Statement{
		StatementID:         8,
		JournalID:           1,
		Name:                "2024-02",
		Date:                time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		BalanceStart:        decimal.RequireFromString("140.00"),
		BalanceEnd:          decimal.RequireFromString("165.50"),
		BalanceEndReal:      decimal.RequireFromString("165.50"),
		PreviousStatementID: &prev,
	}

	m := mapping.ToModelStatement(s)
	assert.Equal(t, int64(7), m.PreviousStatementID.Int64)
	assert.Equal(t, s, mapping.ToDomainStatement(m))

	s.PreviousStatementID = nil
	assert.Nil(t, mapping.ToDomainStatement(mapping.ToModelStatement(s)).PreviousStatementID)
}

func TestAttachmentMapping_OwnerRef(t *testing.T) {
	a := domain.Attachment{
		AttachmentID: 21,
		Owner:        domain.OwnerRef{Kind: domain.OwnerStatement, ID: 8},
		Name:         "feb.png",
		MimeType:     "image/png",
	}

	m := mapping.ToModelAttachment(a)

	assert.Equal(t, "statement", m.OwnerKind)
	assert.Equal(t, int64(8), m.OwnerID)
	assert.Equal(t, a, mapping.ToDomainAttachment(m))
}
