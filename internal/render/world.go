// internal/render/world.go
package render

import (
	"image/color"
	"math"
	"slices"

	"ghost-fighter/internal/assets"
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// WorldRenderer draws the entities of a session.
type WorldRenderer struct {
	ecs     *entity.ECS
	sprites *assets.SpriteManager
	ids     []types.EntityID
}

func NewWorldRenderer(ecs *entity.ECS, sprites *assets.SpriteManager) *WorldRenderer {
	return &WorldRenderer{ecs: ecs, sprites: sprites}
}

// Draw paints ghosts (oldest first, so newer ones are on top), then
// projectiles, rings, particles and float text.
func (r *WorldRenderer) Draw(screen *ebiten.Image) {
	r.ids = r.ids[:0]
	for id := range r.ecs.Ghosts {
		r.ids = append(r.ids, id)
	}
	slices.Sort(r.ids)
	for _, id := range r.ids {
		pos, size := r.ecs.Positions[id], r.ecs.Sizes[id]
		if pos == nil || size == nil {
			continue
		}
		r.drawGhost(screen, r.ecs.Ghosts[id], *pos, *size)
	}

	for id, p := range r.ecs.Projectiles {
		pos, size := r.ecs.Positions[id], r.ecs.Sizes[id]
		if pos == nil || size == nil {
			continue
		}
		r.drawProjectile(screen, p, *pos, *size)
	}

	for _, ring := range r.ecs.Rings {
		f := component.Fraction(ring.Elapsed, ring.Duration)
		radius := config.RingBaseSize / 2 * utils.Lerp(ring.StartScale, ring.EndScale, utils.EaseOutQuad(f))
		vector.StrokeCircle(screen, float32(ring.X), float32(ring.Y), float32(radius), 3, fade(ring.Color, 1-f), true)
	}

	for _, p := range r.ecs.Particles {
		f := component.Fraction(p.Elapsed, p.Duration)
		e := utils.EaseOutQuad(f)
		x, y := p.X+p.DX*e, p.Y+p.DY*e
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(4*p.Scale), fade(p.Color, 1-f), true)
	}

	for _, ft := range r.ecs.FloatTexts {
		f := component.Fraction(ft.Elapsed, ft.Duration)
		b := text.BoundString(basicfont.Face7x13, ft.Text)
		x := int(ft.X) - b.Dx()/2
		y := int(ft.Y - config.FloatTextRise*f)
		text.Draw(screen, ft.Text, basicfont.Face7x13, x, y, fade(ft.Color, 1-f))
	}
}

func (r *WorldRenderer) drawGhost(screen *ebiten.Image, g *component.Ghost, pos component.Position, size component.Size) {
	if img := r.sprites.Ghost(g.Face); img != nil {
		drawSprite(screen, img, pos, size, pos.Rot, 1)
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
	// head, then a skirt under it
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), rad, body, true)
	vector.DrawFilledRect(screen, float32(pos.X), float32(cy), float32(size.W), float32(size.H/2), body, true)
	for i := 0; i < 3; i++ {
		bx := float32(pos.X + size.W*(float64(i)+0.5)/3)
		vector.DrawFilledCircle(screen, bx, float32(pos.Y+size.H), rad/3, config.BackgroundColor, true)
	}

	eyeY := float32(cy - size.H*0.08)
	eyeDX := float32(size.W * 0.18)
	eyeR := rad * 0.14
	switch g.Face {
	case component.FaceHappy:
		vector.StrokeLine(screen, float32(cx)-eyeDX-eyeR, eyeY, float32(cx)-eyeDX+eyeR, eyeY-eyeR, 2, config.GhostEyeColor, true)
		vector.StrokeLine(screen, float32(cx)+eyeDX-eyeR, eyeY-eyeR, float32(cx)+eyeDX+eyeR, eyeY, 2, config.GhostEyeColor, true)
	default:
		vector.DrawFilledCircle(screen, float32(cx)-eyeDX, eyeY, eyeR, config.GhostEyeColor, true)
		vector.DrawFilledCircle(screen, float32(cx)+eyeDX, eyeY, eyeR, config.GhostEyeColor, true)
	}
	if g.Face == component.FaceSad {
		vector.DrawFilledCircle(screen, float32(cx)+eyeDX, eyeY+eyeR*2, eyeR/2, color.RGBA{120, 180, 255, 255}, true)
	}
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, p *component.Projectile, pos component.Position, size component.Size) {
	if img := r.sprites.Projectile(p.Mode); img != nil {
		drawSprite(screen, img, pos, size, p.Spin, 1)
		return
	}
	def := defs.Attack(p.Mode)
	cx, cy := pos.Center(size)
	rad := size.W / 2 * 0.7
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(rad), def.ProjectileTint, true)
	a := p.Spin * math.Pi / 180
	dx, dy := math.Cos(a)*rad, math.Sin(a)*rad
	vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 2, config.TextLightColor, true)
}

// drawSprite fits img into the box at pos, rotated about its centre by rot degrees.
func drawSprite(screen, img *ebiten.Image, pos component.Position, size component.Size, rot, alpha float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(size.W/iw, size.H/ih)
	op.GeoM.Rotate(rot * math.Pi / 180)
	cx, cy := pos.Center(size)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func fade(c color.RGBA, a float64) color.RGBA {
	a = utils.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
