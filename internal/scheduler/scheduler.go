// Package scheduler finds the earliest moment that fits every party's schedule.
package scheduler

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/rendezvous/internal/timestamp"
	"github.com/javiermolinar/rendezvous/internal/week"
)

// Defaults used when Options fields are left zero.
const (
	DefaultHorizonDays  = 3
	DefaultRetryMinutes = 30
)

// ErrInvalidDuration is returned for negative durations.
var ErrInvalidDuration = errors.New("duration must not be negative")

// Options configures a Scheduler.
type Options struct {
	HorizonDays  int         // working days searched, including the first
	RetryMinutes int         // block marked busy by Moment.TryLater
	Codes        *week.Codes // weekday codes used by Moment.Format
}

// Scheduler builds Moments with fixed search settings.
type Scheduler struct {
	horizonDays  int
	retryMinutes int
	codes        *week.Codes
}

// New creates a new Scheduler with the given options.
func New(opts Options) *Scheduler {
	s := &Scheduler{
		horizonDays:  opts.HorizonDays,
		retryMinutes: opts.RetryMinutes,
		codes:        opts.Codes,
	}
	if s.horizonDays <= 0 {
		s.horizonDays = DefaultHorizonDays
	}
	if s.retryMinutes <= 0 {
		s.retryMinutes = DefaultRetryMinutes
	}
	if s.codes == nil {
		s.codes = week.Cyrillic
	}
	return s
}

// WorkingHours is one recurring daily window, e.g. {"10:00+5", "18:00+5"}.
// The offset of From is the reference offset for the whole search.
type WorkingHours struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// AppropriateMoment finds the first moment of the given duration (in minutes)
// that fits inside hours and conflicts with nobody in schedule.
// A moment that does not exist is not an error; check Moment.Exists.
func (s *Scheduler) AppropriateMoment(schedule Schedule, duration int, hours WorkingHours) (*Moment, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, duration)
	}

	offset, err := timestamp.Offset(hours.From)
	if err != nil {
		return nil, fmt.Errorf("parsing working hours: %w", err)
	}
	window, err := timestamp.NormalizePair(hours.From, hours.To, offset)
	if err != nil {
		return nil, fmt.Errorf("parsing working hours: %w", err)
	}

	busy, err := BuildBusySet(schedule, offset)
	if err != nil {
		return nil, err
	}

	m := &Moment{
		busy:         busy,
		duration:     duration,
		window:       window,
		offset:       offset,
		horizonDays:  s.horizonDays,
		retryMinutes: s.retryMinutes,
		codes:        s.codes,
	}
	m.slot, m.found = FindSlotAcrossDays(m.busy, duration, window, s.horizonDays)
	return m, nil
}

// AppropriateMoment runs a search with the default options.
func AppropriateMoment(schedule Schedule, duration int, hours WorkingHours) (*Moment, error) {
	return New(Options{}).AppropriateMoment(schedule, duration, hours)
}
