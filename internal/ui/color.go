package ui

import "image/color"

// Darken scales the colour channels of c by f, keeping alpha.
func Darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Fill is the colour a button is drawn with: base, darkened while the press
// pulse is visible.
func (b *Button) Fill(base color.RGBA) color.RGBA {
	if b.Scale() > 1.01 {
		return Darken(base, 0.75)
	}
	return base
}
