package scheduler

import (
	"fmt"

	"github.com/javiermolinar/rendezvous/internal/timestamp"
	"github.com/javiermolinar/rendezvous/internal/week"
)

// Period is one busy range of a party, e.g. {"ПН 12:00+5", "ПН 17:00+5"}.
type Period struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Party is a named participant with its busy periods.
type Party struct {
	Name string
	Busy []Period
}

// Schedule lists the parties in a stable order.
type Schedule []Party

// BuildBusySet normalizes every busy period onto globalOffset.
// Parties are concatenated in order, so the result is deterministic.
func BuildBusySet(schedule Schedule, globalOffset int) ([]week.Interval, error) {
	var busy []week.Interval
	for _, p := range schedule {
		for i, period := range p.Busy {
			iv, err := timestamp.NormalizePair(period.From, period.To, globalOffset)
			if err != nil {
				return nil, fmt.Errorf("party %s, period %d: %w", p.Name, i, err)
			}
			busy = append(busy, iv)
		}
	}
	return busy, nil
}
