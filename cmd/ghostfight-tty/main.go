// cmd/ghostfight-tty/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/audio"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/interfaces"
	"ghost-fighter/internal/observability"
	"ghost-fighter/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	// the screen owns stdout, so logs go to a file
	logPath := filepath.Join(os.TempDir(), "ghostfight-tty.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	observability.InitLogger("ghostfight-tty", logFile)

	opts, err := config.ParseFlags("ghostfight-tty", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	tuning, err := opts.Tuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load tuning: %v\n", err)
		os.Exit(1)
	}
	if err := defs.LoadAttackDefinitions(filepath.Join(tuning.AssetDir, defs.AttacksFile)); err != nil {
		fmt.Fprintf(os.Stderr, "load attack definitions: %v\n", err)
		os.Exit(1)
	}

	var sound interfaces.SoundPlayer = audio.Nop{}
	if tuning.Audio && !audio.Disabled() {
		player := audio.NewBeepPlayer(0.5)
		if err := player.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, playing silently")
		} else {
			defer player.Cleanup()
			sound = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	game := app.NewGame(tuning, terminal.Field(cols, rows), sound)
	log.Info().Int("cols", cols).Int("rows", rows).Int64("seed", tuning.Seed).Msg("terminal session")
	if err := terminal.Run(screen, game); err != nil {
		log.Error().Err(err).Msg("run")
	}
}
