package types

import "fmt"

// Point is a pixel coordinate. Grid positions are multiples of the cell size.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Grid represents the game grid dimensions
type Grid struct {
	CellSize int // pixels per cell side
	Cells    int // cells per side
}

// Span returns the grid side length in pixels.
func (g Grid) Span() int {
	return g.CellSize * g.Cells
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	span := g.Span()
	return p.X >= 0 && p.X < span && p.Y >= 0 && p.Y < span
}

// OnLattice reports whether p is the top-left corner of a cell.
func (g Grid) OnLattice(p Point) bool {
	return g.Contains(p) && p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Cell returns the pixel position of the cell at column cx, row cy.
func (g Grid) Cell(cx, cy int) Point {
	return Point{X: cx * g.CellSize, Y: cy * g.CellSize}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Cells * g.Cells
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p is inside r. The right and bottom edges are inclusive,
// matching raylib's CheckCollisionPointRec.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CenteredRect returns a w×h rectangle centred on the grid.
func (g Grid) CenteredRect(w, h int) Rect {
	c := g.Cells / 2 * g.CellSize
	return Rect{X: c - w/2, Y: c - h/2, W: w, H: h}
}

// Screen is the active game screen.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Game constants
const (
	DefaultCellSize      = 40
	DefaultCells         = 20
	DefaultFoodScore     = 10
	DefaultInitialLength = 3
)
