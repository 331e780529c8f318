package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/setforge/setforge/internal/app"
	"github.com/setforge/setforge/internal/logging"
	"github.com/setforge/setforge/internal/pubsub"
	"github.com/setforge/setforge/internal/status"
	"github.com/setforge/setforge/internal/tui/components/core"
	"github.com/setforge/setforge/internal/tui/layout"
	"github.com/setforge/setforge/internal/tui/page"
	"github.com/setforge/setforge/internal/tui/styles"
)

type keyMap struct {
	Logs key.Binding
	Quit key.Binding
	Help key.Binding
}

const quitKey = "q"

var keys = keyMap{
	Logs: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "logs"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+_"),
		key.WithHelp("ctrl+?", "toggle help"),
	),
}

var logsReturnKey = key.NewBinding(
	key.WithKeys("esc", "backspace", quitKey),
	key.WithHelp("esc/q", "go back"),
)

type appModel struct {
	width, height int
	currentPage   page.PageID
	previousPage  page.PageID
	pages         map[page.PageID]tea.Model
	loadedPages   map[page.PageID]bool
	status        core.StatusCmp
	app           *app.App

	showHelp bool
}

func (a appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmd := a.pages[a.currentPage].Init()
	a.loadedPages[a.currentPage] = true
	cmds = append(cmds, cmd)
	cmds = append(cmds, a.status.Init())
	return tea.Batch(cmds...)
}

func (a appModel) updateAllPages(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	for id := range a.pages {
		a.pages[id], cmd = a.pages[id].Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case cursor.BlinkMsg:
		return a.updateAllPages(msg)
	case spinner.TickMsg:
		return a.updateAllPages(msg)

	case tea.WindowSizeMsg:
		msg.Height -= 1 // Make space for the status bar
		a.width, a.height = msg.Width, msg.Height

		s, _ := a.status.Update(msg)
		a.status = s.(core.StatusCmp)
		a.pages[a.currentPage], cmd = a.pages[a.currentPage].Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case page.PageChangeMsg:
		return a, a.moveToPage(msg.ID)

	case pubsub.Event[logging.Log]:
		a.pages[page.LogsPage], cmd = a.pages[page.LogsPage].Update(msg)
		return a, cmd

	case pubsub.Event[status.StatusMessage]:
		s, cmd := a.status.Update(msg)
		a.status = s.(core.StatusCmp)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Logs):
			return a, a.moveToPage(page.LogsPage)
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		case a.currentPage == page.LogsPage && key.Matches(msg, logsReturnKey):
			return a, a.moveToPage(page.BuilderPage)
		}
		if a.showHelp {
			// Any other key closes the help overlay.
			a.showHelp = false
			return a, nil
		}
	}

	s, cmd := a.status.Update(msg)
	cmds = append(cmds, cmd)
	a.status = s.(core.StatusCmp)

	a.pages[a.currentPage], cmd = a.pages[a.currentPage].Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *appModel) moveToPage(pageID page.PageID) tea.Cmd {
	var cmds []tea.Cmd
	if _, ok := a.loadedPages[pageID]; !ok {
		cmds = append(cmds, a.pages[pageID].Init())
		a.loadedPages[pageID] = true
	}
	a.previousPage = a.currentPage
	a.currentPage = pageID
	if sizable, ok := a.pages[a.currentPage].(layout.Sizeable); ok {
		cmds = append(cmds, sizable.SetSize(a.width, a.height))
	}
	return tea.Batch(cmds...)
}

func (a appModel) View() string {
	components := []string{
		a.pages[a.currentPage].View(),
		a.status.View(),
	}
	appView := lipgloss.JoinVertical(lipgloss.Top, components...)

	if a.showHelp {
		overlay := a.helpView()
		row := lipgloss.Height(appView)/2 - lipgloss.Height(overlay)/2
		col := lipgloss.Width(appView)/2 - lipgloss.Width(overlay)/2
		appView = layout.PlaceOverlay(col, row, overlay, appView)
	}

	return appView
}

func (a appModel) helpView() string {
	bindings := layout.KeyMapToSlice(keys)
	if p, ok := a.pages[a.currentPage].(layout.Bindings); ok {
		bindings = append(bindings, p.BindingKeys()...)
	}
	if a.currentPage == page.LogsPage {
		bindings = append(bindings, logsReturnKey)
	}

	var lines []string
	lines = append(lines, styles.Title().Render("Keys"), "")
	seen := map[string]bool{}
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		lines = append(lines,
			styles.Bold().Render(h.Key)+styles.Muted().Render(" "+h.Desc))
	}

	return styles.Regular().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func New(app *app.App) tea.Model {
	startPage := page.BuilderPage
	return appModel{
		currentPage: startPage,
		loadedPages: make(map[page.PageID]bool),
		status:      core.NewStatusCmp(app),
		app:         app,
		pages: map[page.PageID]tea.Model{
			page.BuilderPage: page.NewBuilderPage(app),
			page.LogsPage:    page.NewLogsPage(),
		},
	}
}
