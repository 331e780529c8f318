package page

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setforge/setforge/internal/tui/components/logs"
	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/styles"
)

var LogsPage PageID = "logs"

type LogPage interface {
	tea.Model
	layout.Sizeable
	layout.Bindings
}

type logsPage struct {
	width, height int
	table         logs.TableComponent
}

func (p *logsPage) Init() tea.Cmd {
	return p.table.Init()
}

func (p *logsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return p, p.SetSize(msg.Width, msg.Height)
	}

	table, cmd := p.table.Update(msg)
	p.table = table.(logs.TableComponent)
	return p, cmd
}

func (p *logsPage) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Bold().Render(" esc")+styles.Muted().Render(" to go back"),
		"",
		p.table.View(),
	)
}

func (p *logsPage) BindingKeys() []key.Binding {
	return p.table.BindingKeys()
}

func (p *logsPage) GetSize() (int, int) {
	return p.width, p.height
}

func (p *logsPage) SetSize(width int, height int) tea.Cmd {
	p.width = width
	p.height = height
	return p.table.SetSize(width, height-3)
}

func NewLogsPage() LogPage {
	return &logsPage{
		table: logs.NewLogsTable(),
	}
}
