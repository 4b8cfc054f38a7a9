// Package term renders the game on a character terminal with tcell.
package term

import (
	"unicode/utf8"

	"snake-infinity/game/types"
)

// Layout maps grid pixels to terminal cells. Each grid cell is two columns
// wide and one row tall; the grid starts at (OriginX, OriginY).
type Layout struct {
	Grid    types.Grid
	OriginX int
	OriginY int
}

// Width returns the number of columns the grid occupies.
func (l Layout) Width() int {
	return l.Grid.Cells * 2
}

// Height returns the number of rows the grid occupies.
func (l Layout) Height() int {
	return l.Grid.Cells
}

// CellAt returns the left column and row of the grid cell containing p.
func (l Layout) CellAt(p types.Point) (col, row int) {
	return l.OriginX + p.X/l.Grid.CellSize*2, l.OriginY + p.Y/l.Grid.CellSize
}

// PixelAt returns the pixel under the centre of a terminal cell.
func (l Layout) PixelAt(col, row int) types.Point {
	cell := l.Grid.CellSize
	return types.Point{
		X: (col-l.OriginX)*cell/2 + cell/4,
		Y: (row-l.OriginY)*cell + cell/2,
	}
}

// Label returns where text starts when centred horizontally on the grid at pixel height py.
func (l Layout) Label(text string, py int) (col, row int) {
	n := utf8.RuneCountInString(text)
	return l.OriginX + (l.Width()-n)/2, l.OriginY + py/l.Grid.CellSize
}

// LabelRect returns the pixel bounds of a centred label, used for hit testing.
func (l Layout) LabelRect(text string, py int) types.Rect {
	col, row := l.Label(text, py)
	cell := l.Grid.CellSize
	n := utf8.RuneCountInString(text)
	return types.Rect{
		X: (col - l.OriginX) * cell / 2,
		Y: (row - l.OriginY) * cell,
		W: n*cell/2 - 1,
		H: cell - 1,
	}
}

// ButtonY is the pixel height at which buttons are drawn.
func (l Layout) ButtonY() int {
	return l.Grid.Cells / 2 * l.Grid.CellSize
}
