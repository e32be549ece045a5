package domain

import "regexp"

// ReservedSlugs cannot be used as public slugs because they collide with fixed routes.
var ReservedSlugs = map[string]bool{
	"image": true,
}

// Journal is a named ledger (bank or cash book) whose statements are grouped under it.
type Journal struct {
	JournalID     int64   `json:"journalID"`
	Name          string  `json:"name"`
	PublicCanView bool    `json:"publicCanView"`        // Only journals with this flag are ever exposed publicly
	PublicSlug    *string `json:"publicSlug,omitempty"` // Unique among publicly visible journals
	AuditFields
}

// Slug returns the public slug or an empty string.
func (j Journal) Slug() string {
	if j.PublicSlug == nil {
		return ""
	}
	return *j.PublicSlug
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// IsValidSlug reports whether s is a well formed public slug that is not reserved.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s) && !ReservedSlugs[s]
}
