package terminal

import (
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const frameInterval = 16 * time.Millisecond

// Run drives game on screen until the user quits. The screen must already
// be initialised; Run does not call Fini.
func Run(screen tcell.Screen, game *app.Game) error {
	screen.EnableMouse()
	screen.HideCursor()

	ctl := NewController(game)
	ctl.Resize(screen.Size())
	rend := NewRenderer(game, ctl.Layout(), ctl.Paused)

	eventChan := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	maxDelta := time.Duration(config.MaxDeltaTime * float64(time.Second))
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ctl.HandleEvent(ev) {
				log.Info().Int("score", game.Round().Score).Msg("quit")
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			if dt > maxDelta {
				dt = maxDelta
			}
			last = now
			ctl.Tick(dt)
			rend.Draw(screen)
			screen.Show()
		}
	}
}
