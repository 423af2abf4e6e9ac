package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/rendezvous/internal/config"
	"github.com/javiermolinar/rendezvous/internal/plan"
	"github.com/javiermolinar/rendezvous/internal/scheduler"
	"github.com/javiermolinar/rendezvous/internal/ui"
)

// writeFile writes content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// execute runs the CLI with args against the given config file.
func execute(t *testing.T, configPath string, args ...string) string {
	t.Helper()
	ui.DisableColor()
	app := ui.NewApp(nil)
	t.Cleanup(func() { _ = app.Close() })

	var out bytes.Buffer
	app.Root().SetOut(&out)
	app.Root().SetErr(&out)
	app.Root().SetArgs(append([]string{"--config", configPath}, args...))
	if err := app.Execute(); err != nil {
		t.Fatalf("rendezvous %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

const crewPlan = `
duration = 60

[working_hours]
from = "ПН 09:00+5"
to = "ПН 18:00+5"

[[party]]
name = "Danny"
busy = [ { from = "ПН 10:00+5", to = "ПН 12:00+5" } ]

[[party]]
name = "Rusty"
busy = []

[[party]]
name = "Linus"
busy = []
`

func TestFindWithConfigFile(t *testing.T) {
	configPath := writeFile(t, "config.toml", `
[search]
horizon_days = 1
retry_minutes = 60

[output]
template = "%DD %HH:%MM"
weekday_codes = "latin"
`)
	planPath := writeFile(t, "crew.toml", crewPlan)

	out := execute(t, configPath, "find", planPath, "--all")

	// 09:00, then the 60 minute retry block pushes past Danny to 12:00 and on.
	want := []string{"MO 09:00", "MO 12:00", "MO 13:00", "MO 14:00", "MO 15:00", "MO 16:00", "MO 17:00"}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d moments, got %d:\n%s", len(want), len(lines), out)
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, want[i]) {
			t.Errorf("moment %d = %q, want suffix %q", i+1, line, want[i])
		}
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	configPath := writeFile(t, "config.toml", "[output]\ntemplate = \"%HH:%MM\"\n")
	planPath := writeFile(t, "crew.toml", crewPlan)

	t.Setenv("RENDEZVOUS_TEMPLATE", "at %HH:%MM")

	out := execute(t, configPath, "find", planPath, "--duration", "180")
	if strings.TrimSpace(out) != "at 12:00" {
		t.Errorf("expected 'at 12:00', got %q", out)
	}
}

func TestPlanToMoment(t *testing.T) {
	p, err := plan.Parse([]byte(crewPlan))
	if err != nil {
		t.Fatalf("parsing plan: %v", err)
	}

	cfg := config.Default()
	m, err := scheduler.New(cfg.SchedulerOptions()).AppropriateMoment(p.Schedule(), p.Duration, p.WorkingHours)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}

	if got := m.Format(cfg.Output.Template); got != "ПН 09:00" {
		t.Errorf("expected ПН 09:00, got %s", got)
	}
	if !m.TryLater() {
		t.Fatal("expected a later moment")
	}
	if got := m.Format(cfg.Output.Template); got != "ПН 12:00" {
		t.Errorf("expected ПН 12:00 after rejecting 09:00, got %s", got)
	}
}
