package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "apple", "apple"},
		{"leading and trailing", "  red   apple ", "red apple"},
		{"tabs and newlines", "\ta\n\nb\t", "a b"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"  a  b ", "x", "", "  ", "multi  word   value"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestParseBulk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed delimiters", "a, b\nc,,  d ", []string{"a", "b", "c", "d"}},
		{"duplicates preserved", "a,a,b", []string{"a", "a", "b"}},
		{"empty input", "", []string{}},
		{"only delimiters", ",\n,", []string{}},
		{"whitespace collapsed", "red   apple, green  pear", []string{"red apple", "green pear"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseBulk(tt.in))
		})
	}
}
