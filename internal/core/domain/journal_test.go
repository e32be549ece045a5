package domain_test

import (
	"strings"
	"testing"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{name: "simple", slug: "bank", want: true},
		{name: "digits and dashes", slug: "cash-2024", want: true},
		{name: "single character", slug: "a", want: true},
		{name: "reserved image route", slug: "image", want: false},
		{name: "uppercase", slug: "Bank", want: false},
		{name: "leading dash", slug: "-bank", want: false},
		{name: "slash", slug: "bank/1", want: false},
		{name: "empty", slug: "", want: false},
		{name: "too long", slug: strings.Repeat("a", 64), want: false},
		{name: "max length", slug: strings.Repeat("a", 63), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidSlug(tt.slug))
		})
	}
}

func TestJournal_Slug(t *testing.T) {
	s := "bank"

	assert.Equal(t, "bank", domain.Journal{PublicSlug: &s}.Slug())
	assert.Equal(t, "", domain.Journal{}.Slug())
}
