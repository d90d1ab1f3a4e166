package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	if cfg.RoundDuration() != 40*time.Second {
		t.Fatalf("round duration = %v, want 40s", cfg.RoundDuration())
	}
	if cfg.ComboWindow() != 1500*time.Millisecond {
		t.Fatalf("combo window = %v, want 1.5s", cfg.ComboWindow())
	}
	if cfg.HitRadiusFactor != 0.6 {
		t.Fatalf("hit radius factor = %v, want 0.6", cfg.HitRadiusFactor)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesSomeFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	body := `
round_ms = 10000
hit_radius_factor = 0.8
seed = 42

[linger]
min = 100
max = 200
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RoundMS != 10000 || cfg.HitRadiusFactor != 0.8 || cfg.Seed != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Linger != (Range{Min: 100, Max: 200}) {
		t.Fatalf("linger = %+v", cfg.Linger)
	}
	if cfg.MaxGhosts != 7 {
		t.Fatalf("untouched field changed: max_ghosts = %d", cfg.MaxGhosts)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bounds":  "min_ghosts = 5\nmax_ghosts = 4\n",
		"range":   "[pause]\nmin = 10\nmax = 5\n",
		"tick":    "tick_ms = 0\n",
		"initial": "initial_extra = 9\n",
		"syntax":  "round_ms = = 3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error for %q", body)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("seed = 5\nasset_dir = \"from-file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err := ParseFlags("test", []string{"-config", path, "-seed", "9", "-mute"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	cfg, err := o.Tuning()
	if err != nil {
		t.Fatalf("Tuning: %v", err)
	}
	if cfg.Seed != 9 || cfg.AssetDir != "from-file" || cfg.Audio {
		t.Fatalf("cfg seed=%d dir=%q audio=%v", cfg.Seed, cfg.AssetDir, cfg.Audio)
	}
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	if _, err := ParseFlags("test", []string{"-nope"}); err == nil {
		t.Fatalf("unknown flag accepted")
	}
}
