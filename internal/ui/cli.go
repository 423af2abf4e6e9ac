// Package ui implements the rendezvous command line.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rendezvous/internal/config"
	"github.com/javiermolinar/rendezvous/internal/debuglog"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool                    // Enable debug logging
	copyText   func(text string) error // clipboard writer, swapped in tests
}

// NewApp creates a new CLI application with the given config.
// A nil config is loaded from --config (or the default path) before each command.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, copyText: clipboard.WriteAll}

	a.root = &cobra.Command{
		Use:   "rendezvous",
		Short: "Find the earliest moment a whole crew is free",
		Long: `Rendezvous finds the earliest moment, inside recurring daily working
hours, when nobody in the crew is busy.

Busy periods are written as "[WD ]HH:MM+O", for example "ПН 12:00+5",
where O is the UTC offset in hours. Everything is compared in the offset
of the working hours.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := debuglog.Init(a.debug, debuglog.DefaultPath); err != nil {
				return err
			}
			if a.config != nil && !cmd.Flags().Changed("config") {
				return nil
			}
			cfg, err := config.LoadFrom(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.config = cfg
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			debuglog.Close()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+debuglog.DefaultPath+")")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to the config file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.findCmd())
	a.root.AddCommand(a.busyCmd())
	a.root.AddCommand(a.browseCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rendezvous %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Root returns the root command, e.g. to set args and output in tests.
func (a *App) Root() *cobra.Command {
	return a.root
}

// SetClipboard replaces the clipboard writer.
func (a *App) SetClipboard(fn func(text string) error) {
	a.copyText = fn
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources held by the app.
func (a *App) Close() error {
	debuglog.Close()
	return nil
}
