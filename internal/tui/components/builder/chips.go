// Package builder contains the set builder page's components: the value
// inputs and the chip list.
package builder

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/setforge/setforge/internal/set"
	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/styles"
)

// RemoveChipMsg asks the page to remove value from the set. The chip carries
// the exact stored value, so removal never re-normalizes.
type RemoveChipMsg struct {
	Value string
}

type ChipsCmp interface {
	tea.Model
	layout.Sizeable
	layout.Bindings
	SetValues(values []string)
	Focus()
	Blur()
	Focused() bool
}

type chipsKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Remove key.Binding
}

var chipsKeys = chipsKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "up"),
		key.WithHelp("←", "previous value"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "down"),
		key.WithHelp("→", "next value"),
	),
	Remove: key.NewBinding(
		key.WithKeys("backspace", "delete", "enter"),
		key.WithHelp("del", "remove value"),
	),
}

type chipsCmp struct {
	width, height int
	values        []string // collation-sorted for display
	selected      int
	focused       bool
}

func (c *chipsCmp) Init() tea.Cmd {
	return nil
}

func (c *chipsCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		for i, v := range c.values {
			if zone.Get(c.zoneID(i)).InBounds(msg) {
				return c, func() tea.Msg { return RemoveChipMsg{Value: v} }
			}
		}
	case tea.KeyMsg:
		if !c.focused || len(c.values) == 0 {
			return c, nil
		}
		switch {
		case key.Matches(msg, chipsKeys.Prev):
			c.selected = (c.selected - 1 + len(c.values)) % len(c.values)
		case key.Matches(msg, chipsKeys.Next):
			c.selected = (c.selected + 1) % len(c.values)
		case key.Matches(msg, chipsKeys.Remove):
			v := c.values[c.selected]
			return c, func() tea.Msg { return RemoveChipMsg{Value: v} }
		}
	}
	return c, nil
}

func (c *chipsCmp) View() string {
	if len(c.values) == 0 {
		return styles.Muted().Render("No values yet. Add one above or ask the assistant.")
	}

	chips := make([]string, 0, len(c.values))
	for i, v := range c.values {
		style := styles.Chip()
		if c.focused && i == c.selected {
			style = styles.SelectedChip()
		}
		chips = append(chips, zone.Mark(c.zoneID(i), style.Render(v)))
	}

	return wrapChips(chips, c.width)
}

// wrapChips lays chips out in rows that fit the available width.
func wrapChips(chips []string, width int) string {
	if width <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip) + 1
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (c *chipsCmp) zoneID(i int) string {
	return fmt.Sprintf("chip-%d", i)
}

// SetValues replaces the displayed values. The chip list is display-sorted
// with locale-aware collation; the underlying store keeps insertion order.
func (c *chipsCmp) SetValues(values []string) {
	c.values = set.SortedValues(values)
	if c.selected >= len(c.values) {
		c.selected = max(0, len(c.values)-1)
	}
}

func (c *chipsCmp) SetSize(width, height int) tea.Cmd {
	c.width = width
	c.height = height
	return nil
}

func (c *chipsCmp) GetSize() (int, int) {
	return c.width, c.height
}

func (c *chipsCmp) Focus() {
	c.focused = true
}

func (c *chipsCmp) Blur() {
	c.focused = false
}

func (c *chipsCmp) Focused() bool {
	return c.focused
}

func (c *chipsCmp) BindingKeys() []key.Binding {
	return layout.KeyMapToSlice(chipsKeys)
}

func NewChipsCmp() ChipsCmp {
	return &chipsCmp{}
}
