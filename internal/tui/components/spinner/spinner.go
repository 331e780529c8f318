// Package spinner provides a standalone spinner for non-interactive mode,
// run as its own small bubbletea program.
package spinner

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/setforge/setforge/internal/tui/styles"
)

type model struct {
	spinner spinner.Model
	message string
}

type stopMsg struct{}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// Spinner displays an animated progress indicator with a message.
type Spinner struct {
	prog *tea.Program
	done chan struct{}
}

func NewSpinner(message string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Regular().Foreground(styles.Primary)

	prog := tea.NewProgram(
		model{spinner: s, message: message},
		tea.WithOutput(os.Stderr),
		tea.WithoutCatchPanics(),
	)

	return &Spinner{
		prog: prog,
		done: make(chan struct{}),
	}
}

func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		_, _ = s.prog.Run()
	}()
}

func (s *Spinner) Stop() {
	s.prog.Send(stopMsg{})
	<-s.done
	// Clear the spinner line.
	fmt.Fprint(os.Stderr, "\r\033[K")
}
