package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreAdd(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.True(t, s.Add("  red   apple "))
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, []string{"red apple"}, s.Values())

	// Adding the same value twice is a no-op the second time.
	assert.False(t, s.Add("red apple"))
	assert.Equal(t, 1, s.Size())
}

func TestStoreAddEmpty(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   \t "))
	assert.Equal(t, 0, s.Size())
}

func TestStoreAddCaseSensitive(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.True(t, s.Add("Tent"))
	assert.True(t, s.Add("tent"))
	assert.Equal(t, 2, s.Size())
}

func TestStoreRemove(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("a")
	s.Add("b")

	assert.True(t, s.Remove("a"))
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.Contains("a"))

	// Removing an absent value returns false and leaves size unchanged.
	assert.False(t, s.Remove("a"))
	assert.Equal(t, 1, s.Size())

	// Remove is exact-match: no re-normalization of the argument.
	assert.False(t, s.Remove(" b "))
	assert.True(t, s.Remove("b"))
	assert.Equal(t, 0, s.Size())
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.False(t, s.Clear())

	s.Add("a")
	s.Add("b")
	assert.True(t, s.Clear())
	assert.Equal(t, 0, s.Size())
	assert.False(t, s.Clear())
}

func TestStoreValuesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("pear")
	s.Add("apple")
	s.Add("banana")
	s.Remove("apple")
	s.Add("apple")

	assert.Equal(t, []string{"pear", "banana", "apple"}, s.Values())

	// Values returns a snapshot, not the backing slice.
	values := s.Values()
	values[0] = "mutated"
	assert.Equal(t, []string{"pear", "banana", "apple"}, s.Values())
}
