// Package set implements the core value pipeline: whitespace normalization,
// the unique-membership store, bulk input parsing, and the textual set
// literal.
package set

import "strings"

// Normalize trims leading/trailing whitespace and collapses every internal
// run of whitespace to a single space. It is idempotent; an all-whitespace
// input normalizes to the empty string.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// ParseBulk splits raw on every newline and comma, normalizes each segment,
// and drops segments that normalize to empty. Input order is preserved and
// duplicates are kept; deduplication is the store's job.
func ParseBulk(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := Normalize(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}
