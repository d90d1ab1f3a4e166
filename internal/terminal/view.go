// Package terminal runs a session in a text terminal through tcell. The
// playfield keeps its pixel coordinates; every cell stands for a CellW x CellH
// block of it.
package terminal

import (
	"image/color"
	"math"

	"ghost-fighter/internal/system"

	"github.com/gdamore/tcell/v2"
)

const (
	CellW = 12
	CellH = 24

	actionsRows = 3
)

// Field returns the playfield a cols x rows terminal covers.
func Field(cols, rows int) *system.Playfield {
	return &system.Playfield{
		W:        float64(cols * CellW),
		H:        float64(rows * CellH),
		ActionsH: actionsRows * CellH,
	}
}

// ToCell maps a playfield point to the cell containing it.
func ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y / CellH))
}

// CellCenter maps a cell back to the playfield point in its middle.
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellW, (float64(row) + 0.5) * CellH
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
