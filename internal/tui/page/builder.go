package page

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setforge/setforge/internal/app"
	"github.com/setforge/setforge/internal/set"
	"github.com/setforge/setforge/internal/status"
	"github.com/setforge/setforge/internal/suggest"
	"github.com/setforge/setforge/internal/tui/components/builder"
	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/styles"
)

var BuilderPage PageID = "builder"

type BuilderPageCmp interface {
	tea.Model
	layout.Sizeable
	layout.Bindings
}

type builderKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Copy      key.Binding
	Clear     key.Binding
}

var builderKeys = builderKeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy set literal"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear all values"),
	),
}

// suggestResultMsg carries the outcome of a suggestion request together with
// the flight sequence that produced it, so stale results can be dropped.
type suggestResultMsg struct {
	seq   uint64
	items []any
	err   error
}

const (
	focusEditor = iota
	focusBulk
	focusPrompt
	focusChips
	focusCount
)

type builderPage struct {
	width, height int
	app           *app.App

	editor builder.EditorCmp
	bulk   builder.BulkCmp
	prompt builder.PromptCmp
	chips  builder.ChipsCmp

	focus int
}

func (p *builderPage) Init() tea.Cmd {
	return tea.Batch(
		p.editor.Init(),
		p.bulk.Init(),
		p.prompt.Init(),
		p.chips.Init(),
	)
}

func (p *builderPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return p, p.SetSize(msg.Width, msg.Height)

	case builder.AddValueMsg:
		p.addSingle(msg.Raw)
		return p, nil

	case builder.AddBulkMsg:
		p.addBulk(msg.Raw)
		return p, nil

	case builder.RemoveChipMsg:
		if p.app.Set.Remove(msg.Value) {
			p.refreshChips()
			status.Info(fmt.Sprintf("Removed %q", msg.Value))
		}
		return p, nil

	case builder.SuggestMsg:
		return p, p.requestSuggestions(msg.Prompt)

	case builder.CancelSuggestMsg:
		// The cancelled result delivery resets the pending UI.
		p.app.Flight.Cancel()
		return p, nil

	case suggestResultMsg:
		return p, p.finishSuggestions(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, builderKeys.Copy):
			p.copyLiteral()
			return p, nil
		case key.Matches(msg, builderKeys.Clear):
			p.clearAll()
			return p, nil
		case key.Matches(msg, builderKeys.NextField):
			return p, p.moveFocus(1)
		case key.Matches(msg, builderKeys.PrevField):
			if p.focus != focusChips {
				return p, p.moveFocus(-1)
			}
		}
	}

	p.editor, cmd = updateCmp(p.editor, msg)
	cmds = append(cmds, cmd)
	p.bulk, cmd = updateCmp(p.bulk, msg)
	cmds = append(cmds, cmd)
	p.prompt, cmd = updateCmp(p.prompt, msg)
	cmds = append(cmds, cmd)
	p.chips, cmd = updateCmp(p.chips, msg)
	cmds = append(cmds, cmd)

	return p, tea.Batch(cmds...)
}

func updateCmp[T tea.Model](cmp T, msg tea.Msg) (T, tea.Cmd) {
	m, cmd := cmp.Update(msg)
	return m.(T), cmd
}

// addSingle adds one raw value, notifying either way. The input component
// already cleared its field.
func (p *builderPage) addSingle(raw string) {
	if p.app.Set.Add(raw) {
		p.refreshChips()
		status.Info(fmt.Sprintf("Added %q", set.Normalize(raw)))
		return
	}
	status.Warn("Value is empty or already in the set")
}

// addBulk parses the raw text and adds every segment, counting only adds
// that changed membership.
func (p *builderPage) addBulk(raw string) {
	added := 0
	for _, value := range set.ParseBulk(raw) {
		if p.app.Set.Add(value) {
			added++
		}
	}
	if added == 0 {
		status.Warn("No new values were added")
		return
	}
	p.refreshChips()
	status.Info(fmt.Sprintf("Added %d item(s)", added))
}

func (p *builderPage) clearAll() {
	if !p.app.Set.Clear() {
		status.Info("The set is already empty")
		return
	}
	p.refreshChips()
	status.Info("All values cleared")
}

func (p *builderPage) copyLiteral() {
	values := p.app.Set.Values()
	if len(values) == 0 {
		status.Warn("Nothing to copy yet")
		return
	}
	if err := clipboard.WriteAll(set.Literal(values)); err != nil {
		status.Error("Could not copy to clipboard: " + err.Error())
		return
	}
	status.Info("Set literal copied to clipboard")
}

// requestSuggestions starts a suggestion request. Any outstanding request is
// cancelled silently before the new one becomes current.
func (p *builderPage) requestSuggestions(rawPrompt string) tea.Cmd {
	prompt := set.Normalize(rawPrompt)
	if prompt == "" {
		status.Warn("Describe what you need first")
		return nil
	}

	ctx, seq := p.app.Flight.Begin(context.Background())
	status.Info("Contacting assistant…")

	client := p.app.Suggest
	return tea.Batch(
		p.prompt.SetPending(true),
		func() tea.Msg {
			items, err := client.BuildSet(ctx, prompt)
			return suggestResultMsg{seq: seq, items: items, err: err}
		},
	)
}

// finishSuggestions handles a request outcome. Results from superseded
// requests are dropped without touching the UI.
func (p *builderPage) finishSuggestions(msg suggestResultMsg) tea.Cmd {
	if !p.app.Flight.Finish(msg.seq) {
		return nil
	}
	cmd := p.prompt.SetPending(false)

	if msg.err != nil {
		serr := suggest.Classify(msg.err)
		if serr.Kind == suggest.KindCancelled {
			status.Info("Request cancelled")
		} else {
			status.Error(serr.Message)
		}
		return cmd
	}

	if len(suggest.CleanCandidates(msg.items)) == 0 {
		status.Error("The assistant returned no items")
		return cmd
	}

	added := suggest.Ingest(p.app.Set, msg.items)
	if added == 0 {
		status.Info("All suggestions are already in your set")
		return cmd
	}
	p.refreshChips()
	status.Info(fmt.Sprintf("Added %d item(s)", added))
	return cmd
}

func (p *builderPage) refreshChips() {
	p.chips.SetValues(p.app.Set.Values())
}

func (p *builderPage) moveFocus(delta int) tea.Cmd {
	p.editor.Blur()
	p.bulk.Blur()
	p.prompt.Blur()
	p.chips.Blur()

	p.focus = (p.focus + delta + focusCount) % focusCount
	switch p.focus {
	case focusEditor:
		return p.editor.Focus()
	case focusBulk:
		return p.bulk.Focus()
	case focusPrompt:
		return p.prompt.Focus()
	case focusChips:
		p.chips.Focus()
	}
	return nil
}

func (p *builderPage) View() string {
	title := styles.Title().Render(styles.SetForgeIcon + " setforge")

	literal := set.Literal(p.app.Set.Values())
	literalView := styles.Muted().Render("Set literal: ") + styles.Regular().Render(literal)

	sections := []string{
		title,
		"",
		p.editor.View(),
		"",
		p.bulk.View(),
		"",
		p.prompt.View(),
		"",
		p.chips.View(),
		"",
		literalView,
	}

	return styles.Padded().Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (p *builderPage) GetSize() (int, int) {
	return p.width, p.height
}

func (p *builderPage) SetSize(width int, height int) tea.Cmd {
	p.width = width
	p.height = height
	inner := max(10, width-2)
	return tea.Batch(
		p.editor.SetSize(inner, 2),
		p.bulk.SetSize(inner, 5),
		p.prompt.SetSize(inner, 2),
		p.chips.SetSize(inner, max(3, height-16)),
	)
}

func (p *builderPage) BindingKeys() []key.Binding {
	bindings := layout.KeyMapToSlice(builderKeys)
	bindings = append(bindings, p.editor.BindingKeys()...)
	bindings = append(bindings, p.bulk.BindingKeys()...)
	bindings = append(bindings, p.prompt.BindingKeys()...)
	bindings = append(bindings, p.chips.BindingKeys()...)
	return bindings
}

func NewBuilderPage(app *app.App) BuilderPageCmp {
	return &builderPage{
		app:    app,
		editor: builder.NewEditorCmp(),
		bulk:   builder.NewBulkCmp(),
		prompt: builder.NewPromptCmp(),
		chips:  builder.NewChipsCmp(),
	}
}
