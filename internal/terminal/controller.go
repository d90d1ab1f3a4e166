package terminal

import (
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// Controller turns terminal events into session operations.
type Controller struct {
	game   *app.Game
	layout *ui.Layout
	held   bool // primary mouse button down on the last mouse event
	paused bool
}

func NewController(game *app.Game) *Controller {
	return &Controller{game: game, layout: ui.NewLayout(game.Field)}
}

func (c *Controller) Layout() *ui.Layout { return c.layout }

// Paused reports whether the round clock is frozen.
func (c *Controller) Paused() bool { return c.paused }

// HandleEvent reports whether the user asked to quit.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.Key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !c.held {
			col, row := ev.Position()
			c.Press(col, row)
		}
		c.held = down
	case *tcell.EventResize:
		cols, rows := ev.Size()
		c.Resize(cols, rows)
	}
	return false
}

// Key handles a key press. Space and Enter start or restart the round; the
// digit keys pick attack modes in button order.
func (c *Controller) Key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		c.confirm()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch {
	case r == 'q' || r == 'Q':
		return true
	case r == 'p' || r == 'P':
		if c.game.Round().Phase == component.RoundRunning {
			c.paused = !c.paused
		}
	case c.paused:
	case r == ' ':
		c.confirm()
	case r >= '1' && r < '1'+rune(len(c.layout.Modes)):
		b := c.layout.Modes[r-'1']
		b.Press()
		c.game.SetAttackMode(b.Mode)
	}
	return false
}

func (c *Controller) confirm() {
	switch c.game.Round().Phase {
	case component.RoundIdle:
		c.game.StartRound()
	case component.RoundEnded:
		c.game.Again()
	}
}

// Press handles a primary click on a cell.
func (c *Controller) Press(col, row int) {
	if c.paused {
		c.paused = false
		return
	}
	x, y := CellCenter(col, row)
	switch c.game.Round().Phase {
	case component.RoundIdle:
		if c.layout.Start.Contains(x, y) {
			c.layout.Start.Press()
			c.game.StartRound()
		}
	case component.RoundEnded:
		if c.layout.Again.Contains(x, y) {
			c.layout.Again.Press()
			c.game.Again()
		}
	case component.RoundRunning:
		if ui.InActionsBar(c.game.Field, y) {
			if b, ok := c.layout.ModeAt(x, y); ok {
				b.Press()
				c.game.SetAttackMode(b.Mode)
			}
			return
		}
		c.game.Tap(x, y)
	}
}

// Resize follows a terminal size change.
func (c *Controller) Resize(cols, rows int) {
	f := Field(cols, rows)
	c.game.Resize(f.W, f.H)
	c.layout.Resize(c.game.Field)
	log.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
}

// Tick advances the session and the button pulses.
func (c *Controller) Tick(dt time.Duration) {
	if !c.paused {
		c.game.Update(dt)
	}
	for _, b := range c.layout.Buttons() {
		b.Update(dt)
	}
}

// ModeKey returns the key that selects mode, or 0.
func ModeKey(mode defs.AttackMode) rune {
	for i, def := range defs.Attacks {
		if def.Mode == mode {
			return rune('1' + i)
		}
	}
	return 0
}
