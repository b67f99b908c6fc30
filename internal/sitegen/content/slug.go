package content

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts free text to a URL-safe slug: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Idempotent; symbol-only input yields "".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugOr returns the slug of s, or fallback when the slug is empty.
func SlugOr(s, fallback string) string {
	if slug := Slugify(s); slug != "" {
		return slug
	}
	return Slugify(fallback)
}
