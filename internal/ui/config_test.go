package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/rendezvous/internal/config"
)

func TestConfigShow(t *testing.T) {
	out, err := run(t, newTestApp(), "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"[search]", "horizon_days     = 3", "weekday_codes    = cyrillic"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rendezvous", "config.toml")

	out, err := run(t, newTestApp(), "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Created "+path) {
		t.Errorf("unexpected output %q", out)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cfg.Search.HorizonDays != 3 {
		t.Errorf("expected default horizon_days, got %d", cfg.Search.HorizonDays)
	}

	out, err = run(t, newTestApp(), "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("expected existing file notice, got %q", out)
	}
}

func TestConfigEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	app := newTestApp()
	app.configPath = path

	in := strings.NewReader("5\nabc\n15\n\nlatin\n")
	var out strings.Builder
	if err := app.runConfigInteractive(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if cfg.Search.HorizonDays != 5 {
		t.Errorf("expected horizon_days 5, got %d", cfg.Search.HorizonDays)
	}
	if cfg.Search.RetryMinutes != 15 {
		t.Errorf("expected retry_minutes 15, got %d", cfg.Search.RetryMinutes)
	}
	if cfg.Output.Template != "%DD %HH:%MM" {
		t.Errorf("expected template kept, got %q", cfg.Output.Template)
	}
	if cfg.Output.WeekdayCodes != "latin" {
		t.Errorf("expected latin, got %q", cfg.Output.WeekdayCodes)
	}
	if !strings.Contains(out.String(), `Invalid number "abc"`) {
		t.Errorf("expected invalid number notice:\n%s", out.String())
	}
}

func TestConfigEdit_Invalid(t *testing.T) {
	app := newTestApp()
	app.configPath = filepath.Join(t.TempDir(), "config.toml")

	in := strings.NewReader("9\n\n\n\n")
	var out strings.Builder
	if err := app.runConfigInteractive(in, &out); err == nil {
		t.Error("expected validation error for horizon 9")
	}
}
