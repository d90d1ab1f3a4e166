package render

import (
	"image/color"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/system"
	"ghost-fighter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const hudTop = 20

// DrawHUD draws time, score and the combo readout along the top edge.
func DrawHUD(screen *ebiten.Image, field *system.Playfield, r component.RoundState) {
	h := ui.NewHUD(r)
	face := basicfont.Face7x13
	text.Draw(screen, h.Time, face, 12, hudTop, config.TextLightColor)
	sb := text.BoundString(face, h.Score)
	text.Draw(screen, h.Score, face, int(field.W)/2-sb.Dx()/2, hudTop, config.TextLightColor)
	if !h.ShowCombo {
		return
	}
	cb := text.BoundString(face, h.Combo)
	op := &ebiten.DrawImageOptions{}
	// scale about the label's centre
	op.GeoM.Translate(-float64(cb.Dx())/2, float64(cb.Dy())/2)
	op.GeoM.Scale(h.ComboScale, h.ComboScale)
	op.GeoM.Translate(field.W-12-float64(cb.Dx())/2, hudTop-float64(cb.Dy())/2)
	op.ColorScale.ScaleWithColor(config.ComboColor)
	text.DrawWithOptions(screen, h.Combo, face, op)
}

// DrawActions draws the bottom bar with the attack mode buttons.
func DrawActions(screen *ebiten.Image, field *system.Playfield, layout *ui.Layout, mode defs.AttackMode) {
	vector.DrawFilledRect(screen, 0, float32(field.H-field.ActionsH), float32(field.W), float32(field.ActionsH), config.ActionsBarColor, false)
	for _, b := range layout.Modes {
		bg := config.ButtonColor
		if b.Mode == mode {
			bg = config.ButtonActive
		}
		drawButton(screen, b, bg)
	}
}

// DrawOverlay dims the playfield and shows centred lines with one button.
func DrawOverlay(screen *ebiten.Image, field *system.Playfield, lines []string, button *ui.Button) {
	vector.DrawFilledRect(screen, 0, 0, float32(field.W), float32(field.H), config.OverlayColor, false)
	face := basicfont.Face7x13
	y := int((field.H-field.ActionsH)/2) - 20*len(lines)
	for i, line := range lines {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.ComboColor
		}
		b := text.BoundString(face, line)
		text.Draw(screen, line, face, int(field.W)/2-b.Dx()/2, y, clr)
		y += 24
	}
	if button != nil {
		drawButton(screen, button, config.ButtonActive)
	}
}

func drawButton(screen *ebiten.Image, b *ui.Button, bg color.RGBA) {
	s := b.Scale()
	cx, cy := b.Center()
	w, h := b.W*s, b.H*s
	x, y := cx-w/2, cy-h/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), b.Fill(bg), true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, config.TextLightColor, true)
	face := basicfont.Face7x13
	tb := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-tb.Dx()/2, int(cy)+tb.Dy()/2-2, config.TextLightColor)
}

// DrawPauseButton draws the two-bar pause icon.
func DrawPauseButton(screen *ebiten.Image, b *ui.Button) {
	cx, cy := b.Center()
	size := b.W / 4 * b.Scale()
	w, h, gap := size*0.6, size*2, size*0.4
	for _, x := range []float64{cx - w - gap/2, cx + gap/2} {
		vector.DrawFilledRect(screen, float32(x), float32(cy-h/2), float32(w), float32(h), config.TextLightColor, true)
	}
}
