package scheduler

import "github.com/javiermolinar/rendezvous/internal/week"

// FindSlot returns the earliest interval of the given duration inside window
// that intersects none of busy. Returns false if nothing fits.
func FindSlot(busy []week.Interval, duration int, window week.Interval) (week.Interval, bool) {
	candidate := week.NewInterval(window.From, duration)

	for candidate.To <= window.To {
		blocker, ok := latestConflict(busy, candidate)
		if !ok {
			return candidate, true
		}
		// Every start before blocker.To still overlaps blocker.
		candidate = candidate.Shift(int(blocker.To - candidate.From))
	}

	return week.Interval{}, false
}

// FindSlotAcrossDays repeats FindSlot for up to days consecutive days,
// shifting the whole window by one day after each miss.
func FindSlotAcrossDays(busy []week.Interval, duration int, window week.Interval, days int) (week.Interval, bool) {
	for range days {
		if slot, ok := FindSlot(busy, duration, window); ok {
			return slot, true
		}
		window = window.Shift(week.MinutesInDay)
	}
	return week.Interval{}, false
}

// latestConflict returns the busy interval hitting candidate that ends last.
func latestConflict(busy []week.Interval, candidate week.Interval) (week.Interval, bool) {
	var blocker week.Interval
	found := false
	for _, b := range busy {
		if !b.Intersects(candidate) {
			continue
		}
		if !found || b.To > blocker.To {
			blocker = b
			found = true
		}
	}
	return blocker, found
}
