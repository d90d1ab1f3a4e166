package terminal

import (
	"strings"
	"testing"
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/testutil/testlog"

	"github.com/gdamore/tcell/v2"
)

// grid is an in-memory Canvas.
type grid struct {
	w, h  int
	cells []rune
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make([]rune, w*h)}
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = r
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) row(y int) string {
	return string(g.cells[y*g.w : (y+1)*g.w])
}

func (g *grid) contains(s string) bool {
	for y := 0; y < g.h; y++ {
		if strings.Contains(g.row(y), s) {
			return true
		}
	}
	return false
}

const cols, rows = 40, 34

func newTestController(t *testing.T) (*Controller, *app.Game) {
	t.Helper()
	testlog.Start(t)
	tuning := config.Default()
	tuning.Seed = 42
	game := app.NewGame(tuning, Field(cols, rows), nil)
	return NewController(game), game
}

func TestCellMappingRoundTrips(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {5, 7}, {39, 33}} {
		x, y := CellCenter(c[0], c[1])
		if col, row := ToCell(x, y); col != c[0] || row != c[1] {
			t.Fatalf("cell %v -> (%v,%v) -> (%d,%d)", c, x, y, col, row)
		}
	}
	if col, row := ToCell(-1, -1); col != -1 || row != -1 {
		t.Fatalf("negative point mapped to (%d,%d)", col, row)
	}
	f := Field(cols, rows)
	if f.W != cols*CellW || f.H != rows*CellH || f.ActionsH != actionsRows*CellH {
		t.Fatalf("field=%+v", *f)
	}
}

func TestDrawTitleBeforeFirstRound(t *testing.T) {
	ctl, game := newTestController(t)
	g := newGrid(cols, rows)
	NewRenderer(game, ctl.Layout(), ctl.Paused).Draw(g)
	if !g.contains("GHOST FIGHTER") || !g.contains("[ START ]") {
		t.Fatalf("title overlay missing")
	}
}

func TestDrawHUDWhileRunning(t *testing.T) {
	ctl, game := newTestController(t)
	game.StartRound()
	g := newGrid(cols, rows)
	NewRenderer(game, ctl.Layout(), ctl.Paused).Draw(g)
	top := g.row(0)
	if !strings.Contains(top, "TIME 40.0") || !strings.Contains(top, "SCORE 0") {
		t.Fatalf("HUD row=%q", top)
	}
	if strings.Contains(top, "COMBO") {
		t.Fatalf("combo shown before the first hit")
	}
	if !g.contains("[1 POOP]") || !g.contains("[2 TALISMAN]") {
		t.Fatalf("mode buttons missing")
	}
}

func TestDrawSummaryAfterEnd(t *testing.T) {
	ctl, game := newTestController(t)
	game.StartRound()
	game.EndRound()
	g := newGrid(cols, rows)
	NewRenderer(game, ctl.Layout(), ctl.Paused).Draw(g)
	if !g.contains("TIME UP") || !g.contains("MAX COMBO 0") || !g.contains("[ AGAIN ]") {
		t.Fatalf("summary overlay missing")
	}
}

func TestKeys(t *testing.T) {
	ctl, game := newTestController(t)
	if ctl.Key(tcell.KeyRune, ' ') {
		t.Fatalf("space quit")
	}
	if game.Round().Phase != component.RoundRunning {
		t.Fatalf("space did not start the round")
	}
	ctl.Key(tcell.KeyRune, '2')
	if game.AttackMode() != defs.AttackTalisman {
		t.Fatalf("mode=%s after key 2", game.AttackMode())
	}
	ctl.Key(tcell.KeyRune, '9')
	if game.AttackMode() != defs.AttackTalisman {
		t.Fatalf("unbound key changed the mode")
	}

	game.EndRound()
	ctl.Key(tcell.KeyEnter, 0)
	if game.Round().Phase != component.RoundRunning || game.AttackMode() != defs.AttackPoop {
		t.Fatalf("enter after the end did not play again")
	}

	if !ctl.Key(tcell.KeyRune, 'q') || !ctl.Key(tcell.KeyEscape, 0) {
		t.Fatalf("quit keys ignored")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	ctl, game := newTestController(t)
	ctl.Key(tcell.KeyRune, ' ')
	ctl.Key(tcell.KeyRune, 'p')
	if !ctl.Paused() {
		t.Fatalf("p did not pause")
	}
	before := game.Round().Remaining
	ctl.Tick(time.Second)
	if game.Round().Remaining != before {
		t.Fatalf("clock moved while paused")
	}
	g := newGrid(cols, rows)
	NewRenderer(game, ctl.Layout(), ctl.Paused).Draw(g)
	if !g.contains("PAUSED") {
		t.Fatalf("pause overlay missing")
	}
	ctl.Press(20, 20)
	if ctl.Paused() || len(game.World().Projectiles) != 0 {
		t.Fatalf("resume click should only unpause")
	}
}

func TestClickStartThenModeButton(t *testing.T) {
	ctl, game := newTestController(t)
	col, row := ToCell(ctl.Layout().Start.Center())
	ctl.Press(col, row)
	if game.Round().Phase != component.RoundRunning {
		t.Fatalf("START click ignored")
	}
	talisman := ctl.Layout().Modes[1]
	col, row = ToCell(talisman.Center())
	ctl.Press(col, row)
	if game.AttackMode() != defs.AttackTalisman {
		t.Fatalf("mode button click ignored")
	}
	if n := len(game.World().Projectiles); n != 0 {
		t.Fatalf("click in the actions bar threw %d projectiles", n)
	}
}

func TestMouseThrowsOnPressEdgeOnly(t *testing.T) {
	ctl, game := newTestController(t)
	game.StartRound()
	down := tcell.NewEventMouse(20, 20, tcell.Button1, tcell.ModNone)
	ctl.HandleEvent(down)
	ctl.HandleEvent(tcell.NewEventMouse(20, 20, tcell.Button1, tcell.ModNone))
	if n := len(game.World().Projectiles); n != 1 {
		t.Fatalf("held button threw %d projectiles, want 1", n)
	}
	ctl.HandleEvent(tcell.NewEventMouse(20, 20, tcell.ButtonNone, tcell.ModNone))
	ctl.HandleEvent(down)
	if n := len(game.World().Projectiles); n != 2 {
		t.Fatalf("second click: %d projectiles, want 2", n)
	}
}

func TestResizeEventUpdatesField(t *testing.T) {
	ctl, game := newTestController(t)
	ctl.HandleEvent(tcell.NewEventResize(50, 30))
	if game.Field.W != 50*CellW || game.Field.H != 30*CellH {
		t.Fatalf("field=%+v", *game.Field)
	}
	if b := ctl.Layout().Modes[0]; b.Y+b.H > game.Field.H {
		t.Fatalf("mode button below the field: %+v", *b)
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	ctl, game := newTestController(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(cols, rows)

	game.StartRound()
	rend := NewRenderer(game, ctl.Layout(), ctl.Paused)
	for i := 0; i < 60; i++ {
		ctl.Tick(config.ClickCooldown)
		rend.Draw(screen)
		screen.Show()
	}
}
