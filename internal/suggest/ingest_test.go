package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/setforge/setforge/internal/set"
)

func TestIngest(t *testing.T) {
	t.Parallel()

	store := set.NewStore()
	added := Ingest(store, []any{"x", "x", " x ", "y", 42, nil})

	assert.Equal(t, 2, added)
	assert.Equal(t, 2, store.Size())
	assert.True(t, store.Contains("x"))
	assert.True(t, store.Contains("y"))
}

func TestIngestDuplicateSuggestions(t *testing.T) {
	t.Parallel()

	store := set.NewStore()
	added := Ingest(store, []any{"N95 respirator", "N95 respirator"})

	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"N95 respirator"}, store.Values())
}

func TestIngestAgainstExistingStore(t *testing.T) {
	t.Parallel()

	store := set.NewStore()
	store.Add("tent")

	assert.Equal(t, 0, Ingest(store, []any{"tent", " tent "}))
	assert.Equal(t, 1, Ingest(store, []any{"tent", "headlamp"}))
}

func TestIngestNotASequence(t *testing.T) {
	t.Parallel()

	store := set.NewStore()
	assert.Equal(t, 0, Ingest(store, nil))
	assert.Equal(t, 0, store.Size())
}

func TestCleanCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []any
		want []string
	}{
		{"mixed junk", []any{"x", "x", " x ", "y", 42, nil}, []string{"x", "y"}},
		{"all unusable", []any{42, nil, "   "}, []string{}},
		{"whitespace collapsed", []any{" red   apple "}, []string{"red apple"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanCandidates(tt.in))
		})
	}
}
