package rlview

import (
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawPauseButton shows two bars while running and a play triangle while
// paused, pulsing after each press.
func drawPauseButton(b *ui.Button, paused bool) {
	cx, cy := b.Center()
	x, y := float32(cx), float32(cy)
	size := float32(b.W/4) * float32(b.Scale())

	if paused {
		col := colorToRL(config.ComboColor)
		p1 := rl.NewVector2(x-size, y-size*1.2)
		p2 := rl.NewVector2(x-size, y+size*1.2)
		p3 := rl.NewVector2(x+size, y)
		// raylib wants counter-clockwise vertices
		rl.DrawTriangle(p1, p2, p3, col)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}

	col := colorToRL(config.TextLightColor)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	left := rl.NewRectangle(x-width-spacing/2, y-height/2, width, height)
	right := rl.NewRectangle(x+spacing/2, y-height/2, width, height)
	for _, r := range []rl.Rectangle{left, right} {
		rl.DrawRectangleRec(r, col)
		rl.DrawRectangleLinesEx(r, 1, rl.White)
	}
}
