package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Frappe colors.
const (
	colorAccent = lipgloss.Color("#8caaee")
	colorGreen  = lipgloss.Color("#a6d189")
	colorRed    = lipgloss.Color("#e78284")
	colorMuted  = lipgloss.Color("#737994")
	colorText   = lipgloss.Color("#c6d0f5")
	colorYellow = lipgloss.Color("#e5c890")
)

// Styles holds all lipgloss styles used by the browser.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Moment  lipgloss.Style
	None    lipgloss.Style
	Status  lipgloss.Style
	Free    lipgloss.Style
	Busy    lipgloss.Style
	Current lipgloss.Style
	Box     lipgloss.Style
}

// NewStyles creates the browser styles.
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(colorMuted).Width(16),
		Text:    lipgloss.NewStyle().Foreground(colorText),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Moment:  lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		None:    lipgloss.NewStyle().Foreground(colorRed).Italic(true),
		Status:  lipgloss.NewStyle().Foreground(colorYellow),
		Free:    lipgloss.NewStyle().Foreground(colorMuted),
		Busy:    lipgloss.NewStyle().Foreground(colorRed),
		Current: lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
	}
}
