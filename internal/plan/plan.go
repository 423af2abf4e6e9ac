// Package plan loads crew plans: parties, their busy periods, and the working hours.
package plan

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rendezvous/internal/scheduler"
	"github.com/javiermolinar/rendezvous/internal/timestamp"
)

// Validation errors.
var (
	ErrNoParties      = errors.New("plan must list at least one party")
	ErrNoWorkingHours = errors.New("plan must set working_hours.from and working_hours.to")
)

// Plan is a crew plan file.
type Plan struct {
	Duration     int                    `toml:"duration"` // minutes
	Template     string                 `toml:"template"` // optional
	WorkingHours scheduler.WorkingHours `toml:"working_hours"`
	Parties      []Party                `toml:"party"`
}

// Party is one [[party]] table.
type Party struct {
	Name string             `toml:"name"`
	Busy []scheduler.Period `toml:"busy"`
}

// Load reads and validates a plan from path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a plan.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the plan. Busy periods are checked when the schedule is built.
func (p *Plan) Validate() error {
	if p.Duration < 0 {
		return fmt.Errorf("%w: %d", scheduler.ErrInvalidDuration, p.Duration)
	}
	if p.WorkingHours.From == "" || p.WorkingHours.To == "" {
		return ErrNoWorkingHours
	}
	if _, err := timestamp.NormalizePair(p.WorkingHours.From, p.WorkingHours.To, 0); err != nil {
		return fmt.Errorf("working_hours: %w", err)
	}
	if len(p.Parties) == 0 {
		return ErrNoParties
	}
	for i, party := range p.Parties {
		if party.Name == "" {
			return fmt.Errorf("party %d: name must be set", i)
		}
	}
	return nil
}

// Schedule converts the plan's parties into a scheduler.Schedule, keeping file order.
func (p *Plan) Schedule() scheduler.Schedule {
	schedule := make(scheduler.Schedule, 0, len(p.Parties))
	for _, party := range p.Parties {
		schedule = append(schedule, scheduler.Party{Name: party.Name, Busy: party.Busy})
	}
	return schedule
}
