package builder

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/styles"
	"github.com/setforge/setforge/internal/tui/util"
)

// AddBulkMsg asks the page to parse raw bulk text and add every segment.
type AddBulkMsg struct {
	Raw string
}

type BulkCmp interface {
	tea.Model
	layout.Sizeable
	layout.Bindings
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

type bulkKeyMap struct {
	Submit key.Binding
}

var bulkKeys = bulkKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "add all values"),
	),
}

type bulkCmp struct {
	width    int
	height   int
	textarea textarea.Model
}

func (m *bulkCmp) Init() tea.Cmd {
	return textarea.Blink
}

func (m *bulkCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.textarea.Focused() && key.Matches(keyMsg, bulkKeys.Submit) {
			raw := m.textarea.Value()
			m.textarea.Reset()
			return m, util.CmdHandler(AddBulkMsg{Raw: raw})
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *bulkCmp) View() string {
	label := styles.Title().Render("Bulk add") +
		styles.Muted().Render("  one per line or comma-separated, ctrl+s to submit")
	return lipgloss.JoinVertical(lipgloss.Left, label, m.textarea.View())
}

func (m *bulkCmp) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.textarea.SetWidth(max(10, width-2))
	m.textarea.SetHeight(max(2, height-1))
	return nil
}

func (m *bulkCmp) GetSize() (int, int) {
	return m.width, m.height
}

func (m *bulkCmp) Focus() tea.Cmd {
	return m.textarea.Focus()
}

func (m *bulkCmp) Blur() {
	m.textarea.Blur()
}

func (m *bulkCmp) Focused() bool {
	return m.textarea.Focused()
}

func (m *bulkCmp) BindingKeys() []key.Binding {
	return layout.KeyMapToSlice(bulkKeys)
}

func NewBulkCmp() BulkCmp {
	ta := textarea.New()
	ta.Placeholder = "tent, sleeping bag\nheadlamp"
	ta.Prompt = " "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(3)
	return &bulkCmp{textarea: ta}
}
