package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChipsSetValuesSortsForDisplay(t *testing.T) {
	t.Parallel()

	c := &chipsCmp{}
	c.SetValues([]string{"tent", "Axe", "banana"})

	// Display order is collation-sorted regardless of insertion order.
	assert.Equal(t, []string{"Axe", "banana", "tent"}, c.values)
}

func TestChipsSelectionClampedAfterShrink(t *testing.T) {
	t.Parallel()

	c := &chipsCmp{}
	c.SetValues([]string{"a", "b", "c"})
	c.selected = 2

	c.SetValues([]string{"a"})
	assert.Equal(t, 0, c.selected)

	c.SetValues(nil)
	assert.Equal(t, 0, c.selected)
}
