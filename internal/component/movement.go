// component/movement.go
package component

// Position is the top-left corner of an entity in playfield pixels plus its
// rotation in degrees.
type Position struct {
	X, Y float64
	Rot  float64
}

// Size is an entity's on-screen box.
type Size struct {
	W, H float64
}

// Center returns the middle of the box anchored at p.
func (p Position) Center(s Size) (float64, float64) {
	return p.X + s.W/2, p.Y + s.H/2
}

// Contains reports whether (x, y) lies inside the box anchored at p.
func (p Position) Contains(s Size, x, y float64) bool {
	return x >= p.X && x <= p.X+s.W && y >= p.Y && y <= p.Y+s.H
}
