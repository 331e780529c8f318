package core

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/setforge/setforge/internal/app"
	"github.com/setforge/setforge/internal/pubsub"
	"github.com/setforge/setforge/internal/status"
	"github.com/setforge/setforge/internal/tui/styles"
)

type StatusCmp interface {
	tea.Model
}

type statusCmp struct {
	app            *app.App
	statusMessages []statusMessage
	width          int
	messageTTL     time.Duration
}

type statusMessage struct {
	Level     status.Level
	Message   string
	ExpiresAt time.Time
}

// statusCleanupMsg triggers removal of expired status messages.
type statusCleanupMsg struct {
	time time.Time
}

func (m statusCmp) clearMessageCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusCleanupMsg{time: t}
	})
}

func (m statusCmp) Init() tea.Cmd {
	return m.clearMessageCmd()
}

func (m statusCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case pubsub.Event[status.StatusMessage]:
		if msg.Type == status.EventStatusPublished {
			m.statusMessages = append(m.statusMessages, statusMessage{
				Level:     msg.Payload.Level,
				Message:   msg.Payload.Message,
				ExpiresAt: msg.Payload.Timestamp.Add(m.messageTTL),
			})
		}
	case statusCleanupMsg:
		var active []statusMessage
		for _, sm := range m.statusMessages {
			if sm.ExpiresAt.After(msg.time) {
				active = append(active, sm)
			}
		}
		m.statusMessages = active
		return m, m.clearMessageCmd()
	}
	return m, nil
}

func (m statusCmp) helpWidget() string {
	return styles.Padded().
		Background(styles.TextMuted).
		Foreground(styles.BackgroundDarker).
		Bold(true).
		Render("ctrl+? help")
}

func (m statusCmp) itemCount() string {
	count := 0
	if m.app != nil && m.app.Set != nil {
		count = m.app.Set.Size()
	}
	return styles.Padded().
		Background(styles.Secondary).
		Foreground(styles.Background).
		Render(fmt.Sprintf("%d item(s)", count))
}

func (m statusCmp) View() string {
	help := m.helpWidget()
	count := m.itemCount()

	statusWidth := max(0, m.width-lipgloss.Width(help)-lipgloss.Width(count))

	var middle string
	if len(m.statusMessages) > 0 {
		sm := m.statusMessages[0]
		infoStyle := styles.Padded().
			Foreground(styles.Background).
			Width(statusWidth)

		switch sm.Level {
		case status.LevelInfo:
			infoStyle = infoStyle.Background(styles.Info)
		case status.LevelWarn:
			infoStyle = infoStyle.Background(styles.Warning)
		case status.LevelError:
			infoStyle = infoStyle.Background(styles.Error)
		case status.LevelDebug:
			infoStyle = infoStyle.Background(styles.TextMuted)
		}

		msg := sm.Message
		if statusWidth > 2 {
			msg = truncate.StringWithTail(msg, uint(statusWidth-2), "…")
		}
		middle = infoStyle.Render(msg)
	} else {
		middle = styles.Padded().
			Foreground(styles.Text).
			Background(styles.BackgroundDarker).
			Width(statusWidth).
			Render("")
	}

	return help + middle + count
}

func NewStatusCmp(app *app.App) StatusCmp {
	return statusCmp{
		app:            app,
		statusMessages: []statusMessage{},
		messageTTL:     4 * time.Second,
	}
}
