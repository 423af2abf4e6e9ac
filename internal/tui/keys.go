package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rendezvous/internal/debuglog"
)

type keyMap struct {
	Later key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Later: key.NewBinding(key.WithKeys("n", " "), key.WithHelp("n/space", "try later")),
		Copy:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Later, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debuglog.Log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%T", msg.Type),
	})

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Later):
		return m.tryLater(), nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyMoment(), nil
	}
	return m, nil
}

func (m Model) tryLater() Model {
	if !m.moment.Exists() {
		m.status = "No moment to reject"
		return m
	}

	ok := m.moment.TryLater()
	debuglog.Log("TRY_LATER", map[string]any{
		"ok":     ok,
		"moment": m.moment.Format(m.plan.Template),
	})
	if !ok {
		m.status = "No later moment"
		return m
	}
	m.tries++
	m.status = fmt.Sprintf("Rejected %d so far", m.tries)
	return m
}

func (m Model) copyMoment() Model {
	if !m.moment.Exists() {
		m.status = "Nothing to copy"
		return m
	}
	if err := m.copyText(m.moment.Format(m.plan.Template)); err != nil {
		m.status = "Copy failed: " + err.Error()
		return m
	}
	m.status = "Copied to clipboard"
	return m
}
