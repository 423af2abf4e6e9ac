package tui

import "github.com/javiermolinar/rendezvous/internal/week"

type cellKind int

const (
	cellFree cellKind = iota
	cellBusy
	cellMoment
)

// dayStrip is one working day split into equal cells.
type dayStrip struct {
	window week.Interval
	cells  []cellKind
}

// buildTimeline splits each of days working windows into width cells.
// A cell is the moment if it overlaps slot, busy if it overlaps any busy
// interval, free otherwise.
func buildTimeline(window week.Interval, busy []week.Interval, slot week.Interval, found bool, days, width int) []dayStrip {
	if width < 1 || window.Len() <= 0 {
		return nil
	}

	strips := make([]dayStrip, 0, days)
	for d := range days {
		w := window.Shift(d * week.MinutesInDay)
		strip := dayStrip{window: w, cells: make([]cellKind, width)}
		for i := range width {
			cell := cellSpan(w, i, width)
			switch {
			case found && cell.Intersects(slot):
				strip.cells[i] = cellMoment
			case anyIntersects(busy, cell):
				strip.cells[i] = cellBusy
			}
		}
		strips = append(strips, strip)
	}
	return strips
}

// cellSpan returns the minutes covered by cell i of n across w.
func cellSpan(w week.Interval, i, n int) week.Interval {
	length := w.Len()
	from := w.From + week.Minute(i*length/n)
	to := w.From + week.Minute((i+1)*length/n)
	if to == from {
		to = from + 1
	}
	return week.Interval{From: from, To: to}
}

func anyIntersects(busy []week.Interval, iv week.Interval) bool {
	for _, b := range busy {
		if b.Intersects(iv) {
			return true
		}
	}
	return false
}
