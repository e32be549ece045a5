package domain

import (
	"strings"
	"time"
)

// OwnerKind is the closed set of record kinds an attachment may belong to.
type OwnerKind string

const (
	OwnerStatement OwnerKind = "statement"
)

// Valid reports whether k is a known owner kind.
func (k OwnerKind) Valid() bool {
	return k == OwnerStatement
}

// OwnerRef is a tagged reference from an attachment to its owning record.
type OwnerRef struct {
	Kind OwnerKind `json:"kind"`
	ID   int64     `json:"id"`
}

// Attachment is a binary file linked to an owning record.
type Attachment struct {
	AttachmentID int64     `json:"attachmentID"`
	Owner        OwnerRef  `json:"owner"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MimeType     string    `json:"mimeType"`
	Data         []byte    `json:"-"` // Only loaded when serving bytes
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// IsImage reports whether the attachment carries an image mime type.
func (a Attachment) IsImage() bool {
	return IsImageMimeType(a.MimeType)
}

// scriptableImageTypes are image types that can carry active content and are never stored.
var scriptableImageTypes = map[string]bool{
	"image/svg+xml": true,
}

// IsScriptableImageMimeType reports whether mimeType is an image type able to run script.
func IsScriptableImageMimeType(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return scriptableImageTypes[mt]
}

// IsImageMimeType reports whether mimeType is an image/* type, ignoring parameters.
func IsImageMimeType(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return strings.HasPrefix(mt, "image/") && len(mt) > len("image/")
}
