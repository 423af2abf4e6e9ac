package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rendezvous/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the effective configuration: defaults, overlaid with the config
file, overlaid with RENDEZVOUS_* environment variables.

Example:
  rendezvous config
  rendezvous config init
  rendezvous config edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)
			printConfig(out, a.config)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := os.Stat(a.configPath); err == nil {
				fmt.Fprintf(out, "Config file already exists: %s\n", a.configPath)
				return nil
			}
			if err := config.Default().SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(out, "Created %s\n", a.configPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	return cmd
}

func (a *App) runConfigInteractive(in io.Reader, out io.Writer) error {
	cfg := *a.config
	reader := bufio.NewReader(in)

	cfg.Search.HorizonDays = promptInt(reader, out, "Horizon (days)", cfg.Search.HorizonDays)
	cfg.Search.RetryMinutes = promptInt(reader, out, "Retry block (minutes)", cfg.Search.RetryMinutes)
	cfg.Output.Template = promptValue(reader, out, "Template", cfg.Output.Template)
	cfg.Output.WeekdayCodes = promptValue(reader, out, "Weekday codes (cyrillic, latin)", cfg.Output.WeekdayCodes)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	a.config = &cfg

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[search]")
	fmt.Fprintf(out, "  horizon_days     = %d\n", cfg.Search.HorizonDays)
	fmt.Fprintf(out, "  retry_minutes    = %d\n", cfg.Search.RetryMinutes)
	fmt.Fprintln(out, "\n[output]")
	fmt.Fprintf(out, "  template         = %s\n", cfg.Output.Template)
	fmt.Fprintf(out, "  weekday_codes    = %s\n", cfg.Output.WeekdayCodes)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}
