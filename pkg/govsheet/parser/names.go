package parser

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeIdentifier lower-cases text and strips every character outside
// [a-z0-9]. Used to resolve artifact references to sheet names regardless
// of case or punctuation ("AI Charter" matches "AI_Charter").
func NormalizeIdentifier(text string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(text), "")
}

// NormalizeSheetName trims, upper-cases, and replaces spaces with
// underscores. Used only for exact matching against the recognized
// domain-mapping sheet names; intentionally distinct from
// NormalizeIdentifier.
func NormalizeSheetName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), " ", "_")
}

// SlugifyFieldName derives a machine-friendly key from a field label.
// Returns a non-empty slug for any non-empty input, falling back to the
// literal "field".
func SlugifyFieldName(label string) string {
	lower := strings.ToLower(label)
	if slug := strings.Trim(nonAlnum.ReplaceAllString(lower, "_"), "_"); slug != "" {
		return slug
	}
	if slug := nonAlnum.ReplaceAllString(lower, ""); slug != "" {
		return slug
	}
	return "field"
}
