// Package timestamp parses "[WD ]HH:MM+O" strings and rebases them into week minutes.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/javiermolinar/rendezvous/internal/week"
)

// Parsing errors.
var (
	ErrMalformed  = errors.New("timestamp must be in \"[WD ]HH:MM+O\" format")
	ErrOutOfRange = errors.New("timestamp hours or minutes out of range")
)

// NoDay marks a timestamp without a recognised weekday.
const NoDay = -1

var pattern = regexp.MustCompile(`^(\p{Lu}{2})? ?(\d{2}):(\d{2})\+(\d)$`)

// Timestamp is a parsed "[WD ]HH:MM+O" value.
type Timestamp struct {
	Day     int // 0=Monday ... 6=Sunday, NoDay if absent or unknown
	Hours   int
	Minutes int
	Offset  int // UTC offset in hours
}

// Parse parses a raw timestamp such as "ПН 09:30+5" or "10:00+3".
// An unknown weekday code parses like an absent one.
func Parse(raw string) (Timestamp, error) {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	ts := Timestamp{Day: NoDay}
	if d, ok := week.ParseWeekday(m[1]); ok {
		ts.Day = int(d)
	}
	// The pattern guarantees digits, so Atoi cannot fail here.
	ts.Hours, _ = strconv.Atoi(m[2])
	ts.Minutes, _ = strconv.Atoi(m[3])
	ts.Offset, _ = strconv.Atoi(m[4])

	if ts.Minutes > 59 || ts.Hours > 24 || (ts.Hours == 24 && ts.Minutes != 0) {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
	}
	return ts, nil
}

// In converts t into week minutes expressed in the given UTC offset.
// A missing weekday counts as Monday.
func (t Timestamp) In(globalOffset int) week.Minute {
	return week.At(max(0, t.Day), t.Hours, t.Minutes) +
		week.Minute((globalOffset-t.Offset)*week.MinutesInHour)
}

// Normalize parses raw and rebases it onto globalOffset.
func Normalize(raw string, globalOffset int) (week.Minute, error) {
	ts, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return ts.In(globalOffset), nil
}

// Offset returns the UTC offset of raw.
func Offset(raw string) (int, error) {
	ts, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return ts.Offset, nil
}

// NormalizePair parses a from/to pair into an interval in globalOffset.
func NormalizePair(from, to string, globalOffset int) (week.Interval, error) {
	start, err := Normalize(from, globalOffset)
	if err != nil {
		return week.Interval{}, fmt.Errorf("parsing from: %w", err)
	}
	end, err := Normalize(to, globalOffset)
	if err != nil {
		return week.Interval{}, fmt.Errorf("parsing to: %w", err)
	}
	return week.Interval{From: start, To: end}, nil
}
