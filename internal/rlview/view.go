// Package rlview is the raylib frontend: one window, immediate-mode drawing,
// mouse and touch input.
package rlview

import (
	"slices"
	"strings"
	"time"

	"ghost-fighter/internal/app"
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/ui"
	"ghost-fighter/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFont    = 24
	textFont   = 20
	titleFont  = 40
	buttonFont = 22
)

var modeKeys = []int32{rl.KeyOne, rl.KeyTwo}

// View drives a session from raylib input and draws it each frame.
type View struct {
	game    *app.Game
	tex     *Textures
	layout  *ui.Layout
	paused  bool
	ids     []types.EntityID
	last    ui.Press
	hasLast bool
	since   time.Duration
}

func NewView(game *app.Game, tex *Textures) *View {
	return &View{game: game, tex: tex, layout: ui.NewLayout(game.Field)}
}

// Frame handles input, advances the session by dt unless paused, and draws.
func (v *View) Frame(dt time.Duration) {
	if rl.IsWindowResized() {
		v.game.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		v.layout.Resize(v.game.Field)
	}
	running := v.game.Round().Phase == component.RoundRunning
	if running && !rl.IsWindowFocused() {
		v.paused = true
	}
	if running && rl.IsKeyPressed(rl.KeyP) {
		v.paused = !v.paused
	}

	v.since += dt
	for _, pr := range v.presses() {
		v.press(pr)
	}
	v.keys()

	if !v.paused {
		v.game.Update(dt)
	}
	for _, b := range v.layout.Buttons() {
		b.Update(dt)
	}

	rl.BeginDrawing()
	rl.ClearBackground(colorToRL(config.BackgroundColor))
	v.draw()
	rl.EndDrawing()
}

// presses collects this frame's pointer-downs. Touch screens also report a
// mouse click for the same contact, which ui.Duplicate filters out.
func (v *View) presses() []ui.Press {
	var out []ui.Press
	add := func(p rl.Vector2) {
		pr := ui.Press{X: float64(p.X), Y: float64(p.Y)}
		if ui.Duplicate(v.hasLast, v.last, v.since, pr) {
			return
		}
		v.last, v.hasLast, v.since = pr, true, 0
		out = append(out, pr)
	}
	if rl.IsGestureDetected(rl.GestureTap) {
		for i := int32(0); i < rl.GetTouchPointCount(); i++ {
			add(rl.GetTouchPosition(i))
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		add(rl.GetMousePosition())
	}
	return out
}

func (v *View) press(pr ui.Press) {
	if v.paused {
		v.paused = false
		return
	}
	switch v.game.Round().Phase {
	case component.RoundIdle:
		if v.layout.Start.Contains(pr.X, pr.Y) {
			v.layout.Start.Press()
			v.game.StartRound()
		}
	case component.RoundEnded:
		if v.layout.Again.Contains(pr.X, pr.Y) {
			v.layout.Again.Press()
			v.game.Again()
		}
	case component.RoundRunning:
		if v.layout.Pause.Contains(pr.X, pr.Y) {
			v.layout.Pause.Press()
			v.paused = true
			return
		}
		if ui.InActionsBar(v.game.Field, pr.Y) {
			if b, ok := v.layout.ModeAt(pr.X, pr.Y); ok {
				b.Press()
				v.game.SetAttackMode(b.Mode)
			}
			return
		}
		v.game.Tap(pr.X, pr.Y)
	}
}

func (v *View) keys() {
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		switch v.game.Round().Phase {
		case component.RoundIdle:
			v.game.StartRound()
		case component.RoundEnded:
			v.game.Again()
		}
	}
	for i, k := range modeKeys {
		if i < len(v.layout.Modes) && rl.IsKeyPressed(k) {
			v.layout.Modes[i].Press()
			v.game.SetAttackMode(v.layout.Modes[i].Mode)
		}
	}
}

func (v *View) draw() {
	ecs := v.game.World()
	v.ids = v.ids[:0]
	for id := range ecs.Ghosts {
		v.ids = append(v.ids, id)
	}
	slices.Sort(v.ids)
	for _, id := range v.ids {
		pos, size := ecs.Positions[id], ecs.Sizes[id]
		if pos == nil || size == nil {
			continue
		}
		v.drawGhost(ecs.Ghosts[id], *pos, *size)
	}

	for id, p := range ecs.Projectiles {
		pos, size := ecs.Positions[id], ecs.Sizes[id]
		if pos == nil || size == nil {
			continue
		}
		if tex, ok := v.tex.projectiles[p.Mode]; ok {
			drawTexture(tex, *pos, *size, p.Spin, 1)
			continue
		}
		cx, cy := pos.Center(*size)
		c := rl.NewVector2(float32(cx), float32(cy))
		rl.DrawCircleV(c, float32(size.W/2), colorToRL(defs.Attack(p.Mode).ProjectileTint))
		end := rl.Vector2Add(c, rl.Vector2Rotate(rl.NewVector2(float32(size.W/2), 0), float32(p.Spin)*rl.Deg2rad))
		rl.DrawLineEx(c, end, 3, colorToRL(config.GhostEyeColor))
	}

	for _, ring := range ecs.Rings {
		f := component.Fraction(ring.Elapsed, ring.Duration)
		radius := config.RingBaseSize / 2 * utils.Lerp(ring.StartScale, ring.EndScale, utils.EaseOutQuad(f))
		col := rl.Fade(colorToRL(ring.Color), float32(1-f))
		rl.DrawRing(rl.NewVector2(float32(ring.X), float32(ring.Y)), float32(radius)-1.5, float32(radius)+1.5, 0, 360, 36, col)
	}

	for _, p := range ecs.Particles {
		f := component.Fraction(p.Elapsed, p.Duration)
		e := utils.EaseOutQuad(f)
		c := rl.NewVector2(float32(p.X+p.DX*e), float32(p.Y+p.DY*e))
		rl.DrawCircleV(c, float32(4*p.Scale), rl.Fade(colorToRL(p.Color), float32(1-f)))
	}

	for _, ft := range ecs.FloatTexts {
		f := component.Fraction(ft.Elapsed, ft.Duration)
		s := ascii(ft.Text)
		x := int32(ft.X) - rl.MeasureText(s, textFont)/2
		y := int32(ft.Y - config.FloatTextRise*f)
		rl.DrawText(s, x, y, textFont, rl.Fade(colorToRL(ft.Color), float32(1-f)))
	}

	v.drawHUD()
	v.drawActions()
	if v.game.Round().Phase == component.RoundRunning {
		drawPauseButton(v.layout.Pause, v.paused)
	}
	switch {
	case v.paused:
		v.drawOverlay([]string{"PAUSED", "tap to resume"}, nil)
	case v.game.Round().Phase == component.RoundIdle:
		v.drawOverlay(ui.TitleLines(), v.layout.Start)
	case v.game.Round().Phase == component.RoundEnded:
		v.drawOverlay(ui.SummaryLines(v.game.Summary()), v.layout.Again)
	}
}

func (v *View) drawGhost(g *component.Ghost, pos component.Position, size component.Size) {
	if tex := v.tex.ghosts[g.Face]; tex.ID != 0 {
		drawTexture(tex, pos, size, pos.Rot, 1)
		return
	}
	body := config.GhostBodyColor
	switch g.Face {
	case component.FaceSad:
		body = config.GhostSadColor
	case component.FaceHappy:
		body = config.GhostHappyColor
	}
	cx, cy := pos.Center(size)
	rad := float32(size.W / 2)
	rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), rad, colorToRL(body))
	rl.DrawRectangleRec(rl.NewRectangle(float32(pos.X), float32(cy), float32(size.W), float32(size.H/2)), colorToRL(body))

	eyeY := float32(cy - size.H*0.08)
	eyeDX := float32(size.W * 0.18)
	eyeR := rad * 0.14
	eye := colorToRL(config.GhostEyeColor)
	for _, ex := range []float32{float32(cx) - eyeDX, float32(cx) + eyeDX} {
		switch g.Face {
		case component.FaceHappy:
			rl.DrawLineEx(rl.NewVector2(ex-eyeR, eyeY), rl.NewVector2(ex, eyeY-eyeR), 2, eye)
			rl.DrawLineEx(rl.NewVector2(ex, eyeY-eyeR), rl.NewVector2(ex+eyeR, eyeY), 2, eye)
		case component.FaceSad:
			rl.DrawCircleV(rl.NewVector2(ex, eyeY), eyeR, eye)
			rl.DrawLineEx(rl.NewVector2(ex, eyeY+eyeR), rl.NewVector2(ex, eyeY+3*eyeR), 2, rl.SkyBlue)
		default:
			rl.DrawCircleV(rl.NewVector2(ex, eyeY), eyeR, eye)
		}
	}
}

func drawTexture(tex rl.Texture2D, pos component.Position, size component.Size, rot, alpha float64) {
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	cx, cy := pos.Center(size)
	dst := rl.NewRectangle(float32(cx), float32(cy), float32(size.W), float32(size.H))
	origin := rl.NewVector2(float32(size.W/2), float32(size.H/2))
	rl.DrawTexturePro(tex, src, dst, origin, float32(rot), rl.Fade(rl.White, float32(alpha)))
}

func (v *View) drawHUD() {
	hud := ui.NewHUD(v.game.Round())
	w := int32(v.game.Field.W)
	light := colorToRL(config.TextLightColor)
	rl.DrawText(hud.Time, 12, 12, hudFont, light)
	rl.DrawText(hud.Score, (w-rl.MeasureText(hud.Score, hudFont))/2, 12, hudFont, light)
	if hud.ShowCombo {
		size := int32(float64(hudFont) * hud.ComboScale)
		s := ascii(hud.Combo)
		rl.DrawText(s, w-12-rl.MeasureText(s, size), 12, size, colorToRL(config.ComboColor))
	}
}

func (v *View) drawActions() {
	f := v.game.Field
	rl.DrawRectangleRec(rl.NewRectangle(0, float32(f.H-f.ActionsH), float32(f.W), float32(f.ActionsH)), colorToRL(config.ActionsBarColor))
	active := v.game.AttackMode()
	for _, b := range v.layout.Modes {
		col := colorToRL(config.ButtonColor)
		if b.Mode == active {
			col = colorToRL(config.ComboColor)
		}
		drawButton(b, col)
	}
}

func (v *View) drawOverlay(lines []string, button *ui.Button) {
	f := v.game.Field
	rl.DrawRectangleRec(rl.NewRectangle(0, 0, float32(f.W), float32(f.H)), colorToRL(config.OverlayColor))
	y := int32((f.H-f.ActionsH)/2) - int32(len(lines))*titleFont
	for i, line := range lines {
		size, col := int32(textFont), colorToRL(config.TextDimColor)
		if i == 0 {
			size, col = titleFont, colorToRL(config.TextLightColor)
		}
		rl.DrawText(line, (int32(f.W)-rl.MeasureText(line, size))/2, y, size, col)
		y += size + 12
	}
	if button != nil {
		drawButton(button, colorToRL(config.ButtonColor))
	}
}

func drawButton(b *ui.Button, col rl.Color) {
	s := b.Scale()
	cx, cy := b.Center()
	w, h := b.W*s, b.H*s
	rect := rl.NewRectangle(float32(cx-w/2), float32(cy-h/2), float32(w), float32(h))
	rl.DrawRectangleRounded(rect, 0.3, 8, b.Fill(col))
	rl.DrawRectangleRoundedLines(rect, 0.3, 8, rl.White)
	size := int32(buttonFont * s)
	rl.DrawText(b.Label, int32(cx)-rl.MeasureText(b.Label, size)/2, int32(cy)-size/2, size, colorToRL(config.TextLightColor))
}

// ascii swaps glyphs raylib's default font lacks.
func ascii(s string) string {
	return strings.ReplaceAll(s, "×", "x")
}
