// cmd/game/main.go
package main

import (
	"os"
	"path/filepath"
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/assets"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/observability"
	"ghost-fighter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(time.Duration(deltaTime * float64(time.Second)))
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	observability.InitLogger("ghostfight", nil)

	opts, err := config.ParseFlags("ghostfight", os.Args[1:])
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

	sounds := assets.NewSoundManager(tuning.AssetDir, tuning.Audio)
	sprites := assets.NewSpriteManager(tuning.AssetDir)
	sprites.LoadAll()
	defer sprites.Cleanup()

	game := app.NewGame(tuning, nil, sounds)
	sm := state.NewStateMachine()
	sm.SetState(state.NewTitleState(sm, state.NewSession(game, sprites)))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ghost Fighter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
