package week

import "fmt"

// Interval is a half-open range [From, To) of week minutes.
type Interval struct {
	From Minute
	To   Minute
}

// NewInterval creates an interval starting at from and lasting duration minutes.
func NewInterval(from Minute, duration int) Interval {
	return Interval{From: from, To: from + Minute(duration)}
}

// Intersects reports whether i and other share at least one minute.
// Two intervals overlap if: i.From < other.To AND i.To > other.From.
// Touching endpoints do not count.
func (i Interval) Intersects(other Interval) bool {
	return i.From < other.To && i.To > other.From
}

// Shift returns a copy of i moved by the given number of minutes.
func (i Interval) Shift(minutes int) Interval {
	return Interval{From: i.From + Minute(minutes), To: i.To + Minute(minutes)}
}

// Len returns the interval length in minutes.
func (i Interval) Len() int {
	return int(i.To - i.From)
}

// Overlap returns the number of minutes i and other have in common.
// Returns 0 if there is no overlap.
func (i Interval) Overlap(other Interval) int {
	start := max(i.From, other.From)
	end := min(i.To, other.To)
	if end <= start {
		return 0
	}
	return int(end - start)
}

// String renders the interval in raw week-minute coordinates.
func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.From, i.To)
}
