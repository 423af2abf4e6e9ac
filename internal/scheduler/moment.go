package scheduler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/javiermolinar/rendezvous/internal/week"
)

// Template placeholders understood by Moment.Format.
const (
	PlaceholderDay     = "%DD"
	PlaceholderHours   = "%HH"
	PlaceholderMinutes = "%MM"
)

// Moment holds the result of a search and can move on to the next candidate.
// It owns its busy set; TryLater appends to it. A Moment is not safe for
// concurrent use.
type Moment struct {
	slot  week.Interval
	found bool

	busy     []week.Interval
	duration int
	window   week.Interval // first day's window, never shifted
	offset   int

	horizonDays  int
	retryMinutes int
	codes        *week.Codes
}

// Exists returns true if a moment was found.
func (m *Moment) Exists() bool {
	return m.found
}

// Slot returns the current moment in week minutes.
func (m *Moment) Slot() (week.Interval, bool) {
	return m.slot, m.found
}

// Duration returns the requested duration in minutes.
func (m *Moment) Duration() int {
	return m.duration
}

// Window returns the first day's working window in week minutes.
func (m *Moment) Window() week.Interval {
	return m.window
}

// Offset returns the reference UTC offset all minutes are expressed in.
func (m *Moment) Offset() int {
	return m.offset
}

// HorizonDays returns the number of days searched.
func (m *Moment) HorizonDays() int {
	return m.horizonDays
}

// Codes returns the weekday code table used by Format.
func (m *Moment) Codes() *week.Codes {
	return m.codes
}

// Busy returns a copy of the current busy set.
func (m *Moment) Busy() []week.Interval {
	return slices.Clone(m.busy)
}

// Format renders the moment into template, replacing the first %DD, %HH and
// %MM. Returns "" if no moment exists.
func (m *Moment) Format(template string) string {
	if !m.found {
		return ""
	}
	return FormatMinute(m.slot.From, template, m.codes)
}

// TryLater marks the current moment as busy for the retry block and searches
// again from the original window. On success the moment is replaced and true
// is returned. Otherwise the previous moment is kept and false is returned.
func (m *Moment) TryLater() bool {
	if !m.found {
		return false
	}

	m.busy = append(m.busy, week.NewInterval(m.slot.From, m.retryMinutes))

	next, ok := FindSlotAcrossDays(m.busy, m.duration, m.window, m.horizonDays)
	if !ok {
		return false
	}
	m.slot = next
	return true
}

// FormatMinute renders a week minute into template using codes for the weekday.
func FormatMinute(at week.Minute, template string, codes *week.Codes) string {
	if codes == nil {
		codes = week.Cyrillic
	}
	_, hours, minutes := at.Split()

	out := strings.Replace(template, PlaceholderDay, codes.Code(at.Weekday()), 1)
	out = strings.Replace(out, PlaceholderHours, fmt.Sprintf("%02d", hours), 1)
	return strings.Replace(out, PlaceholderMinutes, fmt.Sprintf("%02d", minutes), 1)
}
