// cmd/ghostfight-rl/main.go
package main

import (
	"os"
	"path/filepath"
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/audio"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/interfaces"
	"ghost-fighter/internal/observability"
	"ghost-fighter/internal/rlview"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

func main() {
	observability.InitLogger("ghostfight-rl", nil)

	opts, err := config.ParseFlags("ghostfight-rl", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	tuning, err := opts.Tuning()
	if err != nil {
		log.Fatal().Err(err).Msg("load tuning")
	}
	if err := defs.LoadAttackDefinitions(filepath.Join(tuning.AssetDir, defs.AttacksFile)); err != nil {
		log.Fatal().Err(err).Msg("load attack definitions")
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Ghost Fighter")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	var sound interfaces.SoundPlayer = audio.Nop{}
	if tuning.Audio && !audio.Disabled() {
		rl.InitAudioDevice()
		defer rl.CloseAudioDevice()
		sounds := rlview.LoadSounds(tuning.AssetDir)
		defer sounds.Unload()
		sound = sounds
	}

	textures := rlview.LoadTextures(tuning.AssetDir)
	defer textures.Unload()

	game := app.NewGame(tuning, nil, sound)
	view := rlview.NewView(game, textures)

	maxDelta := time.Duration(config.MaxDeltaTime * float64(time.Second))
	for !rl.WindowShouldClose() {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if dt > maxDelta {
			dt = maxDelta
		}
		view.Frame(dt)
	}
	log.Info().Int("score", game.Round().Score).Msg("window closed")
}
