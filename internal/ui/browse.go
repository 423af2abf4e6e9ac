package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rendezvous/internal/tui"
)

func (a *App) browseCmd() *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "browse PLAN",
		Short: "Browse moments interactively",
		Long: `Open an interactive view of the crew's week. Press n to reject the
current moment and look for a later one, c to copy it, q to quit.

Example:
  rendezvous browse gang.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPlan(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			m, err := a.search(p)
			if err != nil {
				return err
			}
			return tui.Run(p, m)
		},
	}

	flags.register(cmd)
	return cmd
}
