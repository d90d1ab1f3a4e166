package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Range is an inclusive millisecond interval that random durations are drawn from.
type Range struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Tuning holds everything about a round that a player-facing build may want to tweak.
// Durations are stored in milliseconds so the TOML file stays readable.
type Tuning struct {
	RoundMS         int     `toml:"round_ms"`
	TickMS          int     `toml:"tick_ms"`
	SpawnEveryMS    int     `toml:"spawn_every_ms"`
	MinGhosts       int     `toml:"min_ghosts"`
	MaxGhosts       int     `toml:"max_ghosts"`
	InitialExtra    int     `toml:"initial_extra"`
	ComboWindowMS   int     `toml:"combo_window_ms"`
	HitRadiusFactor float64 `toml:"hit_radius_factor"`
	ProjectileMS    int     `toml:"projectile_ms"`
	FlyIn           Range   `toml:"fly_in"`
	Linger          Range   `toml:"linger"`
	FlyOut          Range   `toml:"fly_out"`
	Pause           Range   `toml:"pause"`
	Seed            int64   `toml:"seed"`
	AssetDir        string  `toml:"asset_dir"`
	Audio           bool    `toml:"audio"`
}

// Default returns the tuning of the original round: 40 s, 3..7 ghosts, 1.5 s combo window.
func Default() Tuning {
	return Tuning{
		RoundMS:         40_000,
		TickMS:          100,
		SpawnEveryMS:    800,
		MinGhosts:       3,
		MaxGhosts:       7,
		InitialExtra:    2,
		ComboWindowMS:   1500,
		HitRadiusFactor: 0.6,
		ProjectileMS:    280,
		FlyIn:           Range{Min: 1200, Max: 2000},
		Linger:          Range{Min: 700, Max: 1400},
		FlyOut:          Range{Min: 1000, Max: 1800},
		Pause:           Range{Min: 80, Max: 300},
		AssetDir:        DefaultAssetDir,
		Audio:           true,
	}
}

// Load reads a TOML tuning file on top of Default. An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Tuning) error {
	if cfg.RoundMS <= 0 || cfg.TickMS <= 0 || cfg.SpawnEveryMS <= 0 {
		return errors.New("round_ms, tick_ms and spawn_every_ms must be positive")
	}
	if cfg.MinGhosts < 0 || cfg.MaxGhosts < cfg.MinGhosts {
		return fmt.Errorf("ghost bounds %d..%d are invalid", cfg.MinGhosts, cfg.MaxGhosts)
	}
	if cfg.InitialExtra < 0 || cfg.MinGhosts+cfg.InitialExtra > cfg.MaxGhosts {
		return fmt.Errorf("initial batch %d..%d exceeds max_ghosts %d", cfg.MinGhosts, cfg.MinGhosts+cfg.InitialExtra, cfg.MaxGhosts)
	}
	if cfg.ComboWindowMS < 0 {
		return errors.New("combo_window_ms must not be negative")
	}
	if cfg.HitRadiusFactor < 0 {
		return errors.New("hit_radius_factor must not be negative")
	}
	if cfg.ProjectileMS <= 0 {
		return errors.New("projectile_ms must be positive")
	}
	for name, r := range map[string]Range{"fly_in": cfg.FlyIn, "linger": cfg.Linger, "fly_out": cfg.FlyOut, "pause": cfg.Pause} {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("%s range %d..%d is invalid", name, r.Min, r.Max)
		}
	}
	return nil
}

func (t Tuning) RoundDuration() time.Duration { return ms(t.RoundMS) }
func (t Tuning) TickInterval() time.Duration { return ms(t.TickMS) }
func (t Tuning) SpawnInterval() time.Duration { return ms(t.SpawnEveryMS) }
func (t Tuning) ComboWindow() time.Duration { return ms(t.ComboWindowMS) }
func (t Tuning) ProjectileFlight() time.Duration { return ms(t.ProjectileMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
