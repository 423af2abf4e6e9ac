package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rendezvous/internal/scheduler"
	"github.com/javiermolinar/rendezvous/internal/timestamp"
	"github.com/javiermolinar/rendezvous/internal/week"
)

const busyTemplate = "%DD %HH:%MM"

func (a *App) busyCmd() *cobra.Command {
	var flags planFlags
	var noColor bool

	cmd := &cobra.Command{
		Use:   "busy PLAN",
		Short: "Show every busy period in the reference offset",
		Long: `Print each party's busy periods converted into the UTC offset of the
working hours, which is the offset every comparison is made in.

Example:
  rendezvous busy gang.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if noColor || !isTerminal(out) {
				DisableColor()
			}

			p, err := a.loadPlan(cmd, args[0], &flags)
			if err != nil {
				return err
			}

			offset, err := timestamp.Offset(p.WorkingHours.From)
			if err != nil {
				return fmt.Errorf("parsing working hours: %w", err)
			}
			window, err := timestamp.NormalizePair(p.WorkingHours.From, p.WorkingHours.To, offset)
			if err != nil {
				return fmt.Errorf("parsing working hours: %w", err)
			}

			codes := a.config.Codes()
			horizon := a.config.SchedulerOptions().HorizonDays
			fmt.Fprintf(out, "%s UTC+%d\n", formatHeader("Reference offset:"), offset)
			fmt.Fprintf(out, "%s %s\n", formatHeader("Working hours:   "), formatRange(window, codes))
			fmt.Fprintln(out, formatMuted(strings.Repeat("─", min(termWidth(), 48))))

			for _, party := range p.Schedule() {
				intervals, err := scheduler.BuildBusySet(scheduler.Schedule{party}, offset)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatHeader(party.Name))
				if len(intervals) == 0 {
					fmt.Fprintln(out, formatMuted("  always free"))
					continue
				}
				for _, iv := range intervals {
					fmt.Fprintf(out, "  %s  %s\n", formatBusy(formatRange(iv, codes)),
						formatMuted(fmt.Sprintf("%s  %dm in hours", iv, hoursOverlap(iv, window, horizon))))
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// formatRange renders an interval as "ПН 10:00 - ПН 12:00".
func formatRange(iv week.Interval, codes *week.Codes) string {
	return scheduler.FormatMinute(iv.From, busyTemplate, codes) + " - " +
		scheduler.FormatMinute(iv.To, busyTemplate, codes)
}

// hoursOverlap counts the minutes of iv that fall inside the working
// window on any of the searched days.
func hoursOverlap(iv, window week.Interval, days int) int {
	total := 0
	for d := range days {
		total += iv.Overlap(window.Shift(d * week.MinutesInDay))
	}
	return total
}
