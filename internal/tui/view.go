package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rendezvous/internal/scheduler"
)

const (
	stripLabelWidth = 9 // "ПН 10:00 "
	stripSuffix     = 6 // " 18:00"
	maxStripWidth   = 96
	minStripWidth   = 8
)

var cellRunes = map[cellKind]string{
	cellFree:   "·",
	cellBusy:   "█",
	cellMoment: "●",
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("rendezvous"))
	b.WriteString(m.styles.Muted.Render("  ·  " + m.crew()))
	b.WriteString("\n\n")

	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	for _, line := range m.renderTimeline() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.renderLegend())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return m.truncate(b.String())
}

func (m Model) crew() string {
	names := make([]string, 0, len(m.plan.Parties))
	for _, p := range m.plan.Parties {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func (m Model) renderSummary() string {
	codes := m.moment.Codes()
	window := m.moment.Window()

	rows := []string{
		m.row("Working hours", fmt.Sprintf("%s - %s (UTC+%d)",
			scheduler.FormatMinute(window.From, "%DD %HH:%MM", codes),
			scheduler.FormatMinute(window.To, "%DD %HH:%MM", codes),
			m.moment.Offset())),
		m.row("Duration", fmt.Sprintf("%d min", m.moment.Duration())),
		m.row("Horizon", plural(m.moment.HorizonDays(), "day")),
	}

	if m.moment.Exists() {
		rows = append(rows, m.styles.Label.Render("Moment")+m.styles.Moment.Render(m.moment.Format(m.plan.Template)))
	} else {
		rows = append(rows, m.styles.Label.Render("Moment")+m.styles.None.Render("No appropriate moment"))
	}

	return m.styles.Box.Render(strings.Join(rows, "\n"))
}

func (m Model) row(label, value string) string {
	return m.styles.Label.Render(label) + m.styles.Text.Render(value)
}

func (m Model) stripWidth() int {
	w := m.width - stripLabelWidth - stripSuffix
	return max(minStripWidth, min(w, maxStripWidth))
}

func (m Model) renderTimeline() []string {
	slot, found := m.moment.Slot()
	strips := buildTimeline(m.moment.Window(), m.moment.Busy(), slot, found, m.moment.HorizonDays(), m.stripWidth())
	codes := m.moment.Codes()

	lines := make([]string, 0, len(strips))
	for _, s := range strips {
		var b strings.Builder
		b.WriteString(m.styles.Muted.Render(scheduler.FormatMinute(s.window.From, "%DD %HH:%MM", codes)))
		b.WriteString(" ")
		for _, c := range s.cells {
			b.WriteString(m.cellStyle(c).Render(cellRunes[c]))
		}
		b.WriteString(" ")
		b.WriteString(m.styles.Muted.Render(s.window.To.Clock()))
		lines = append(lines, b.String())
	}
	return lines
}

func (m Model) cellStyle(c cellKind) lipgloss.Style {
	switch c {
	case cellBusy:
		return m.styles.Busy
	case cellMoment:
		return m.styles.Current
	default:
		return m.styles.Free
	}
}

func (m Model) renderLegend() string {
	return m.styles.Free.Render(cellRunes[cellFree]) + m.styles.Muted.Render(" free  ") +
		m.styles.Busy.Render(cellRunes[cellBusy]) + m.styles.Muted.Render(" busy  ") +
		m.styles.Current.Render(cellRunes[cellMoment]) + m.styles.Muted.Render(" moment")
}

// truncate cuts every line to the terminal width.
func (m Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > m.width {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
