// Package tui provides the interactive moment browser.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rendezvous/internal/plan"
	"github.com/javiermolinar/rendezvous/internal/scheduler"
)

// Model is the browser state.
type Model struct {
	// Dependencies
	plan     *plan.Plan
	moment   *scheduler.Moment
	copyText func(text string) error

	styles *Styles
	keys   keyMap
	help   help.Model

	// State
	tries  int    // successful TryLater calls
	status string // one-line feedback for the last action
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(text string) error) Option {
	return func(m *Model) {
		m.copyText = fn
	}
}

// New creates a browser for an already searched moment.
func New(p *plan.Plan, m *scheduler.Moment, opts ...Option) Model {
	model := Model{
		plan:     p,
		moment:   m,
		copyText: clipboard.WriteAll,
		styles:   NewStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
	}
	for _, opt := range opts {
		opt(&model)
	}
	return model
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// Moment returns the moment being browsed.
func (m Model) Moment() *scheduler.Moment {
	return m.moment
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Run starts the browser.
func Run(p *plan.Plan, m *scheduler.Moment) error {
	prog := tea.NewProgram(New(p, m), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
