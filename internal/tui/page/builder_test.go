package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/setforge/setforge/internal/app"
	"github.com/setforge/setforge/internal/set"
	"github.com/setforge/setforge/internal/suggest"
)

func newTestPage() *builderPage {
	a := &app.App{
		Set:    set.NewStore(),
		Flight: &suggest.Flight{},
	}
	return NewBuilderPage(a).(*builderPage)
}

func TestAddSingle(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.addSingle("  tent ")
	assert.True(t, p.app.Set.Contains("tent"))

	// Duplicate adds never grow the set.
	p.addSingle("tent")
	assert.Equal(t, 1, p.app.Set.Size())
}

func TestAddBulk(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.addBulk("tent, headlamp\ntent,,  water  purifier ")

	assert.Equal(t, []string{"tent", "headlamp", "water purifier"}, p.app.Set.Values())
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.clearAll() // already empty, still a no-op
	assert.Equal(t, 0, p.app.Set.Size())

	p.addSingle("tent")
	p.clearAll()
	assert.Equal(t, 0, p.app.Set.Size())
}

func TestFinishSuggestionsIngests(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	_, seq := p.app.Flight.Begin(context.Background())

	p.finishSuggestions(suggestResultMsg{
		seq:   seq,
		items: []any{"tent", "tent", 42, " headlamp "},
	})

	assert.False(t, p.app.Flight.Pending())
	assert.Equal(t, []string{"tent", "headlamp"}, p.app.Set.Values())
}

func TestFinishSuggestionsDropsStaleResult(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	_, stale := p.app.Flight.Begin(context.Background())
	_, current := p.app.Flight.Begin(context.Background())

	p.finishSuggestions(suggestResultMsg{seq: stale, items: []any{"tent"}})

	// The stale result neither mutates the set nor clears the flight.
	assert.True(t, p.app.Flight.Pending())
	assert.Equal(t, 0, p.app.Set.Size())

	p.finishSuggestions(suggestResultMsg{seq: current, items: []any{"tent"}})
	assert.False(t, p.app.Flight.Pending())
	assert.True(t, p.app.Set.Contains("tent"))
}

func TestFinishSuggestionsCancelled(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	ctx, seq := p.app.Flight.Begin(context.Background())
	p.app.Flight.Cancel()

	p.finishSuggestions(suggestResultMsg{seq: seq, err: ctx.Err()})

	assert.False(t, p.app.Flight.Pending())
	assert.Equal(t, 0, p.app.Set.Size())
}
