package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simon.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Rules().FlashDuration != 2*time.Second {
		t.Fatalf("default flash = %v, want 2s", cfg.Rules().FlashDuration)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
seed: 42
flash: 750ms
width: 600
palette:
  green: "#00ff00"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Flash != 750*time.Millisecond || cfg.Width != 600 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Height != 560 || cfg.TPS != 60 || !cfg.Sound {
		t.Fatalf("defaults not kept for unset fields: %+v", cfg)
	}
	if got := cfg.BuildPalette().Accent("green"); got.G != 255 || got.R != 0 {
		t.Fatalf("palette override not applied: %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
	if _, err := Load(writeConfig(t, "flash: [")); err == nil {
		t.Fatal("malformed YAML accepted")
	}
	_, err := Load(writeConfig(t, "flash: 0s\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("zero flash err = %v, want ErrInvalid", err)
	}
	_, err = Load(writeConfig(t, "palette:\n  orange: \"#ff8800\"\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("unknown palette key err = %v, want ErrInvalid", err)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "seed: 5\nflash: 3s\ntps: 30\n")

	cfg := Default()
	fs := flag.NewFlagSet("simon", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-flash", "1s"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	got, err := Resolve(fs, cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Flash != time.Second {
		t.Fatalf("flag did not override file: flash=%v", got.Flash)
	}
	if got.Seed != 5 || got.TPS != 30 {
		t.Fatalf("file values lost: %+v", got)
	}
}

func TestResolveWithoutFile(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("simon", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-tps", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := Resolve(fs, cfg); !errors.Is(err, ErrInvalid) {
		t.Fatalf("tps=0 err = %v, want ErrInvalid", err)
	}
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "simon.yaml"))
	if err != nil {
		t.Fatalf("example config: %v", err)
	}
	if cfg.Flash != 2*time.Second || len(cfg.Palette) != 4 {
		t.Fatalf("unexpected example config: %+v", cfg)
	}
}
