package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rendezvous/internal/debuglog"
	"github.com/javiermolinar/rendezvous/internal/plan"
	"github.com/javiermolinar/rendezvous/internal/scheduler"
)

// planFlags are the plan overrides shared by find, busy and browse.
type planFlags struct {
	duration int
	from     string
	to       string
	template string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.duration, "duration", "d", 0, "Override the duration in minutes")
	cmd.Flags().StringVar(&f.from, "from", "", `Override working hours start, e.g. "10:00+5"`)
	cmd.Flags().StringVar(&f.to, "to", "", `Override working hours end, e.g. "18:00+5"`)
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Output template with %DD, %HH and %MM")
}

// loadPlan reads the plan at path and applies flag overrides.
func (a *App) loadPlan(cmd *cobra.Command, path string, f *planFlags) (*plan.Plan, error) {
	p, err := plan.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("duration") {
		p.Duration = f.duration
	}
	if f.from != "" {
		p.WorkingHours.From = f.from
	}
	if f.to != "" {
		p.WorkingHours.To = f.to
	}
	if f.template != "" {
		p.Template = f.template
	}
	if p.Template == "" {
		p.Template = a.config.Output.Template
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// search runs the initial search for p.
func (a *App) search(p *plan.Plan) (*scheduler.Moment, error) {
	s := scheduler.New(a.config.SchedulerOptions())
	m, err := s.AppropriateMoment(p.Schedule(), p.Duration, p.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	debuglog.Log("SEARCH", map[string]any{
		"parties":  len(p.Parties),
		"duration": p.Duration,
		"from":     p.WorkingHours.From,
		"to":       p.WorkingHours.To,
		"found":    m.Exists(),
		"moment":   m.Format(p.Template),
	})
	return m, nil
}

// tryLater advances m and logs the outcome.
func tryLater(m *scheduler.Moment, template string) bool {
	ok := m.TryLater()
	debuglog.Log("TRY_LATER", map[string]any{
		"ok":     ok,
		"moment": m.Format(template),
	})
	return ok
}
