package models

import "time"

// Attachment is a row of the attachments table.
type Attachment struct {
	AttachmentID int64     `db:"attachment_id"`
	OwnerKind    string    `db:"owner_kind"`
	OwnerID      int64     `db:"owner_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	MimeType     string    `db:"mimetype"`
	Data         []byte    `db:"data"`
	CreatedAt    time.Time `db:"created_at"`
	CreatedBy    string    `db:"created_by"`
}
