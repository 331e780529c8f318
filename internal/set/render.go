package set

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortedValues returns values sorted with locale-aware collation, which is
// what the chip list displays. The input slice is not modified.
func SortedValues(values []string) []string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	collate.New(language.Und, collate.Loose).SortStrings(sorted)
	return sorted
}

// Literal renders the brace-delimited set literal, e.g. `{ "a", "b" }`.
// Values appear in the order given (the store's enumeration order, which is
// deliberately not the sorted chip order) and are double-quoted without any
// escaping. An empty set renders as the empty string.
func Literal(values []string) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(v)
		b.WriteByte('"')
	}
	b.WriteString(" }")
	return b.String()
}
