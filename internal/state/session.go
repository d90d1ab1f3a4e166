package state

import (
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/assets"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/input"
	"ghost-fighter/internal/render"
	"ghost-fighter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session is what every state shares: the game, its renderer and the UI.
type Session struct {
	Game    *app.Game
	Layout  *ui.Layout
	World   *render.WorldRenderer
	Pointer *input.Pointer
}

func NewSession(game *app.Game, sprites *assets.SpriteManager) *Session {
	return &Session{
		Game:    game,
		Layout:  ui.NewLayout(game.Field),
		World:   render.NewWorldRenderer(game.ECS, sprites),
		Pointer: input.NewPointer(),
	}
}

// tick advances the game and button pulses.
func (s *Session) tick(dt time.Duration) {
	s.Game.Update(dt)
	for _, b := range s.Layout.Buttons() {
		b.Update(dt)
	}
}

// selectMode handles a mode button press or a 1-based mode key.
func (s *Session) selectMode(b *ui.Button) {
	b.Press()
	s.Game.SetAttackMode(b.Mode)
}

func (s *Session) selectModeKey(n int) {
	if n >= 1 && n <= len(s.Layout.Modes) {
		s.selectMode(s.Layout.Modes[n-1])
	}
}

// drawPlayfield draws background, world, HUD and the actions bar.
func (s *Session) drawPlayfield(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.World.Draw(screen)
	render.DrawHUD(screen, s.Game.Field, s.Game.Round())
	render.DrawActions(screen, s.Game.Field, s.Layout, s.Game.AttackMode())
}

func modeLabel(mode defs.AttackMode) string {
	return defs.Attack(mode).Label
}
