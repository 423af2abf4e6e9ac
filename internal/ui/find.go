package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) findCmd() *cobra.Command {
	var flags planFlags
	var later int
	var all bool
	var copyResult bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "find PLAN",
		Short: "Find the earliest moment that suits everybody",
		Long: `Find the earliest moment of the plan's duration inside the working
hours when no party is busy. Days after the first are tried when the
first day is full, up to the configured horizon.

Use --later to reject the first moments and move on, or --all to list
every moment until none is left.

Example:
  rendezvous find gang.toml
  rendezvous find gang.toml --later 2 --template "%DD %HH:%MM"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if noColor || !isTerminal(out) {
				DisableColor()
			}
			if later < 0 {
				return errors.New("--later must not be negative")
			}

			p, err := a.loadPlan(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			m, err := a.search(p)
			if err != nil {
				return err
			}

			if !m.Exists() {
				fmt.Fprintln(out, formatMuted("No appropriate moment"))
				return nil
			}

			if all {
				n := 1
				fmt.Fprintf(out, "%2d. %s\n", n, formatMoment(m.Format(p.Template)))
				prev, _ := m.Slot()
				for tryLater(m, p.Template) {
					// A zero-length moment never collides with its own retry block.
					if slot, _ := m.Slot(); slot == prev {
						break
					}
					prev, _ = m.Slot()
					n++
					fmt.Fprintf(out, "%2d. %s\n", n, formatMoment(m.Format(p.Template)))
				}
			} else {
				for i := range later {
					if !tryLater(m, p.Template) {
						fmt.Fprintln(out, formatMuted(fmt.Sprintf("No later moment after %d tries", i)))
						break
					}
				}
				fmt.Fprintln(out, formatMoment(m.Format(p.Template)))
			}

			if copyResult {
				if err := a.copyText(m.Format(p.Template)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(out, formatMuted("Copied to clipboard"))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&later, "later", "l", 0, "Reject the first N moments")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every moment until none is left")
	cmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the final moment to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.MarkFlagsMutuallyExclusive("later", "all")
	return cmd
}
