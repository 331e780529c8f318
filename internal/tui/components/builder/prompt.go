package builder

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/styles"
	"github.com/setforge/setforge/internal/tui/util"
)

// SuggestMsg asks the page to request suggestions for the prompt.
type SuggestMsg struct {
	Prompt string
}

// CancelSuggestMsg asks the page to cancel the outstanding request.
type CancelSuggestMsg struct{}

type PromptCmp interface {
	tea.Model
	layout.Sizeable
	layout.Bindings
	Focus() tea.Cmd
	Blur()
	Focused() bool
	SetPending(bool) tea.Cmd
}

type promptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var promptKeys = promptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ask the assistant"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel request"),
	),
}

type promptCmp struct {
	width   int
	input   textinput.Model
	spinner spinner.Model
	pending bool
}

func (m *promptCmp) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.pending {
			if key.Matches(msg, promptKeys.Cancel) {
				return m, util.CmdHandler(CancelSuggestMsg{})
			}
			// Input is disabled while a request is outstanding.
			return m, nil
		}
		if m.input.Focused() && key.Matches(msg, promptKeys.Submit) {
			return m, util.CmdHandler(SuggestMsg{Prompt: m.input.Value()})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptCmp) View() string {
	label := styles.Title().Render("Describe your set")
	if m.pending {
		pendingLine := m.spinner.View() + styles.Muted().Render(" Contacting assistant… ") +
			styles.Bold().Render("esc") + styles.Muted().Render(" to cancel")
		return lipgloss.JoinVertical(lipgloss.Left, label, pendingLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, m.input.View())
}

func (m *promptCmp) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.input.Width = max(10, width-4)
	return nil
}

func (m *promptCmp) GetSize() (int, int) {
	return m.width, 2
}

// SetPending toggles the request-outstanding state. While pending the input
// is replaced with a spinner and only esc is handled.
func (m *promptCmp) SetPending(pending bool) tea.Cmd {
	m.pending = pending
	if pending {
		m.input.Blur()
		return m.spinner.Tick
	}
	// The prompt is kept so a failed request can be retried or edited.
	return m.input.Focus()
}

func (m *promptCmp) Focus() tea.Cmd {
	if m.pending {
		return nil
	}
	return m.input.Focus()
}

func (m *promptCmp) Blur() {
	m.input.Blur()
}

func (m *promptCmp) Focused() bool {
	return m.input.Focused() || m.pending
}

func (m *promptCmp) BindingKeys() []key.Binding {
	return layout.KeyMapToSlice(promptKeys)
}

func NewPromptCmp() PromptCmp {
	input := textinput.New()
	input.Placeholder = "e.g. everything I need for a weekend camping trip"
	input.Prompt = "? "
	input.PromptStyle = styles.Bold().Foreground(styles.Secondary)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Regular().Foreground(styles.Primary)

	return &promptCmp{input: input, spinner: s}
}
