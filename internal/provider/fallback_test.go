package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		first  string
	}{
		{"ppe keyword", "PPE for a clinic", "N95 respirator"},
		{"first aid keyword", "a basic FIRST AID kit", "Adhesive bandages"},
		{"camping keyword", "weekend camping trip", "Tent"},
		{"keyword inside a word", "decamping supplies", "Tent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items, err := fallbackSource{}.Items(context.Background(), tt.prompt)
			require.NoError(t, err)
			require.Len(t, items, 6)
			assert.Equal(t, tt.first, items[0])
		})
	}
}

func TestFallbackSplitsPrompt(t *testing.T) {
	t.Parallel()

	items, err := fallbackSource{}.Items(context.Background(), "hammer, nails\n  wood glue, hammer")
	require.NoError(t, err)
	assert.Equal(t, []string{"hammer", "nails", "wood glue"}, items)
}

func TestFallbackEchoesUnsplittablePrompt(t *testing.T) {
	t.Parallel()

	items, err := fallbackSource{}.Items(context.Background(), "something unusual")
	require.NoError(t, err)
	assert.Equal(t, []string{"something unusual"}, items)
}

func TestFallbackPlaceholder(t *testing.T) {
	t.Parallel()

	// Only delimiters, so splitting yields nothing.
	items, err := fallbackSource{}.Items(context.Background(), ",,\n,")
	require.NoError(t, err)
	assert.Equal(t, placeholderItems, items)
}

func TestCleanItems(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"Tent", "Head lamp"},
		cleanItems([]string{" Tent ", "Tent", "", "  ", "Head   lamp"}),
	)
	assert.Empty(t, cleanItems(nil))
}
