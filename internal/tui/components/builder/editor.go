package builder

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/styles"
	"github.com/setforge/setforge/internal/tui/util"
)

// AddValueMsg asks the page to add a single raw value to the set.
type AddValueMsg struct {
	Raw string
}

type EditorCmp interface {
	tea.Model
	layout.Sizeable
	layout.Bindings
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

type editorKeyMap struct {
	Add key.Binding
}

var editorKeys = editorKeyMap{
	Add: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add value"),
	),
}

type editorCmp struct {
	width int
	input textinput.Model
}

func (m *editorCmp) Init() tea.Cmd {
	return textinput.Blink
}

func (m *editorCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.input.Focused() && key.Matches(keyMsg, editorKeys.Add) {
			value := m.input.Value()
			// The field clears even when the add is rejected.
			m.input.Reset()
			return m, util.CmdHandler(AddValueMsg{Raw: value})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editorCmp) View() string {
	label := styles.Title().Render("Add a value")
	return lipgloss.JoinVertical(lipgloss.Left, label, m.input.View())
}

func (m *editorCmp) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.input.Width = max(10, width-4)
	return nil
}

func (m *editorCmp) GetSize() (int, int) {
	return m.width, 2
}

func (m *editorCmp) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *editorCmp) Blur() {
	m.input.Blur()
}

func (m *editorCmp) Focused() bool {
	return m.input.Focused()
}

func (m *editorCmp) BindingKeys() []key.Binding {
	return layout.KeyMapToSlice(editorKeys)
}

func NewEditorCmp() EditorCmp {
	input := textinput.New()
	input.Placeholder = "e.g. N95 respirator"
	input.Prompt = "> "
	input.PromptStyle = styles.Bold().Foreground(styles.Primary)
	input.Focus()
	return &editorCmp{input: input}
}
