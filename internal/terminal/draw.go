package terminal

import (
	"math"
	"slices"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/ui"
	"ghost-fighter/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the part of tcell.Screen the renderer writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Renderer paints one frame of a session into a Canvas.
type Renderer struct {
	game   *app.Game
	layout *ui.Layout
	paused func() bool
	ids    []types.EntityID

	bg     tcell.Style
	bar    tcell.Style
	light  tcell.Style
	dim    tcell.Style
	combo  tcell.Style
	button tcell.Style
}

// NewRenderer draws game with layout's buttons. paused may be nil.
func NewRenderer(game *app.Game, layout *ui.Layout, paused func() bool) *Renderer {
	if paused == nil {
		paused = func() bool { return false }
	}
	bg := tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	bar := tcell.StyleDefault.Background(rgb(config.ActionsBarColor))
	return &Renderer{
		game:   game,
		layout: layout,
		paused: paused,
		bg:     bg,
		bar:    bar,
		light:  bg.Foreground(rgb(config.TextLightColor)),
		dim:    bg.Foreground(rgb(config.TextDimColor)),
		combo:  bg.Foreground(rgb(config.ComboColor)).Bold(true),
		button: tcell.StyleDefault.Background(rgb(config.ButtonColor)).Foreground(rgb(config.TextLightColor)),
	}
}

func (r *Renderer) Draw(c Canvas) {
	cols, rows := c.Size()
	field := r.game.Field
	_, barRow := ToCell(0, field.H-field.ActionsH)
	for y := 0; y < rows; y++ {
		st := r.bg
		if y >= barRow {
			st = r.bar
		}
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, st)
		}
	}

	r.drawWorld(c)
	round := r.game.Round()
	r.drawHUD(c, cols, round)
	r.drawActions(c)

	switch {
	case r.paused():
		r.drawOverlay(c, []string{"PAUSED", "press P or click to resume"}, nil)
	case round.Phase == component.RoundIdle:
		r.drawOverlay(c, ui.TitleLines(), r.layout.Start)
	case round.Phase == component.RoundEnded:
		r.drawOverlay(c, ui.SummaryLines(r.game.Summary()), r.layout.Again)
	}
}

func (r *Renderer) drawWorld(c Canvas) {
	ecs := r.game.World()
	r.ids = r.ids[:0]
	for id := range ecs.Ghosts {
		r.ids = append(r.ids, id)
	}
	slices.Sort(r.ids)
	for _, id := range r.ids {
		pos, size := ecs.Positions[id], ecs.Sizes[id]
		if pos == nil || size == nil {
			continue
		}
		r.drawGhost(c, ecs.Ghosts[id], *pos, *size)
	}

	for id, p := range ecs.Projectiles {
		pos, size := ecs.Positions[id], ecs.Sizes[id]
		if pos == nil || size == nil {
			continue
		}
		def := defs.Attack(p.Mode)
		col, row := ToCell(pos.Center(*size))
		c.SetContent(col, row, def.Glyph, nil, r.bg.Foreground(rgb(def.ProjectileTint)).Bold(true))
	}

	for _, ring := range ecs.Rings {
		f := component.Fraction(ring.Elapsed, ring.Duration)
		radius := config.RingBaseSize / 2 * utils.Lerp(ring.StartScale, ring.EndScale, utils.EaseOutQuad(f))
		st := r.bg.Foreground(rgb(ring.Color))
		for i := 0; i < 12; i++ {
			a := float64(i) * math.Pi / 6
			col, row := ToCell(ring.X+radius*math.Cos(a), ring.Y+radius*math.Sin(a))
			c.SetContent(col, row, '*', nil, st)
		}
	}

	for _, p := range ecs.Particles {
		e := utils.EaseOutQuad(component.Fraction(p.Elapsed, p.Duration))
		col, row := ToCell(p.X+p.DX*e, p.Y+p.DY*e)
		c.SetContent(col, row, '.', nil, r.bg.Foreground(rgb(p.Color)))
	}

	for _, ft := range ecs.FloatTexts {
		f := component.Fraction(ft.Elapsed, ft.Duration)
		col, row := ToCell(ft.X, ft.Y-config.FloatTextRise*f)
		col -= runewidth.StringWidth(ft.Text) / 2
		drawText(c, col, row, ft.Text, r.bg.Foreground(rgb(ft.Color)).Bold(true))
	}
}

// drawGhost fills the ghost's box, puts eyes on the upper third and a ragged
// hem on the last row.
func (r *Renderer) drawGhost(c Canvas, g *component.Ghost, pos component.Position, size component.Size) {
	body := config.GhostBodyColor
	eye := 'o'
	switch g.Face {
	case component.FaceSad:
		body, eye = config.GhostSadColor, 'T'
	case component.FaceHappy:
		body, eye = config.GhostHappyColor, '^'
	}
	st := tcell.StyleDefault.Background(rgb(body)).Foreground(rgb(config.GhostEyeColor))
	x0, y0 := ToCell(pos.X, pos.Y)
	x1, y1 := ToCell(pos.X+size.W, pos.Y+size.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := ' '
			if y == y1-1 && y1-y0 > 1 && (x-x0)%2 == 1 {
				ch = '▾'
			}
			c.SetContent(x, y, ch, nil, st)
		}
	}
	w := x1 - x0
	eyeRow := y0 + (y1-y0)/3
	if w >= 3 {
		c.SetContent(x0+w/4, eyeRow, eye, nil, st)
		c.SetContent(x1-1-w/4, eyeRow, eye, nil, st)
	} else {
		c.SetContent(x0, eyeRow, eye, nil, st)
	}
}

func (r *Renderer) drawHUD(c Canvas, cols int, round component.RoundState) {
	hud := ui.NewHUD(round)
	drawText(c, 1, 0, hud.Time, r.light)
	drawText(c, (cols-runewidth.StringWidth(hud.Score))/2, 0, hud.Score, r.light)
	if hud.ShowCombo {
		st := r.combo
		if hud.ComboScale > 1.05 {
			st = st.Reverse(true)
		}
		drawText(c, cols-1-runewidth.StringWidth(hud.Combo), 0, hud.Combo, st)
	}
}

func (r *Renderer) drawActions(c Canvas) {
	active := r.game.AttackMode()
	for _, b := range r.layout.Modes {
		label := "[" + string(ModeKey(b.Mode)) + " " + b.Label + "]"
		st := r.button.Background(rgb(b.Fill(config.ButtonColor)))
		if b.Mode == active {
			st = st.Background(rgb(b.Fill(config.ComboColor))).Foreground(rgb(config.GhostEyeColor)).Bold(true)
		}
		drawCentered(c, b, label, st)
	}
}

func (r *Renderer) drawOverlay(c Canvas, lines []string, button *ui.Button) {
	cols, _ := c.Size()
	_, top := ToCell(0, (r.game.Field.H-r.game.Field.ActionsH)/2-CellH*float64(len(lines)+1))
	for i, line := range lines {
		st := r.dim
		if i == 0 {
			st = r.light.Bold(true)
		}
		drawText(c, (cols-runewidth.StringWidth(line))/2, top+i*2, line, st)
	}
	if button != nil {
		drawCentered(c, button, "[ "+button.Label+" ]", r.button.Bold(true))
	}
}

func drawCentered(c Canvas, b *ui.Button, label string, st tcell.Style) {
	col, row := ToCell(b.Center())
	drawText(c, col-runewidth.StringWidth(label)/2, row, label, st)
}

func drawText(c Canvas, col, row int, s string, st tcell.Style) {
	cols, rows := c.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, ch := range s {
		if col >= 0 && col < cols {
			c.SetContent(col, row, ch, nil, st)
		}
		col += runewidth.RuneWidth(ch)
	}
}
