package models

import "database/sql"

// Journal is a row of the journals table.
type Journal struct {
	JournalID     int64          `db:"journal_id"`
	Name          string         `db:"name"`
	PublicCanView bool           `db:"public_can_view"`
	PublicSlug    sql.NullString `db:"public_slug"` // Nullable
	AuditFields
}
