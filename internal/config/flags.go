package config

import (
	"flag"
	"fmt"
)

// Options are the command line flags shared by every frontend.
type Options struct {
	ConfigPath string
	Seed       int64
	AssetDir   string
	Mute       bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string) (Options, error) {
	var o Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&o.ConfigPath, "config", "", "path to a TOML tuning file")
	fs.Int64Var(&o.Seed, "seed", 0, "PRNG seed (0 picks one from the clock)")
	fs.StringVar(&o.AssetDir, "assets", "", "directory holding sprites and sounds")
	fs.BoolVar(&o.Mute, "mute", false, "disable sound")
	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("parse flags: %w", err)
	}
	return o, nil
}

// Tuning loads the tuning file and applies flag overrides on top.
func (o Options) Tuning() (Tuning, error) {
	cfg, err := Load(o.ConfigPath)
	if err != nil {
		return Tuning{}, err
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if o.AssetDir != "" {
		cfg.AssetDir = o.AssetDir
	}
	if o.Mute {
		cfg.Audio = false
	}
	return cfg, nil
}
