package core

// Rect is an axis-aligned pixel rectangle
type Rect struct {
	X, Y, W, H float64
}

// Grid converts between cell and pixel coordinates of a square board
type Grid struct {
	CellSize  int
	TileCount int
}

// NewGrid creates a grid covering canvasSize pixels with cells of cellSize pixels
// Partial cells at the far edge are not part of the board
func NewGrid(canvasSize, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{CellSize: cellSize, TileCount: canvasSize / cellSize}
}

// Contains reports whether c lies on the board
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.TileCount && c.Y >= 0 && c.Y < g.TileCount
}

// CellToPixel returns the pixel rectangle covered by c
func (g Grid) CellToPixel(c Cell) Rect {
	s := float64(g.CellSize)
	return Rect{X: float64(c.X) * s, Y: float64(c.Y) * s, W: s, H: s}
}

// CellCenter returns the pixel center of c
func (g Grid) CellCenter(c Cell) (float64, float64) {
	s := float64(g.CellSize)
	return float64(c.X)*s + s/2, float64(c.Y)*s + s/2
}

// PixelToCell returns the cell containing pixel (x, y); result may be off-board
func (g Grid) PixelToCell(x, y float64) Cell {
	s := float64(g.CellSize)
	return Cell{X: floorDiv(x, s), Y: floorDiv(y, s)}
}

// PixelSize returns the board edge length in pixels
func (g Grid) PixelSize() int {
	return g.TileCount * g.CellSize
}

// Center returns the pixel center of the board
func (g Grid) Center() (float64, float64) {
	half := float64(g.PixelSize()) / 2
	return half, half
}

// CenterCell returns the middle cell, where a new snake starts
func (g Grid) CenterCell() Cell {
	return Cell{X: g.TileCount / 2, Y: g.TileCount / 2}
}

func floorDiv(v, s float64) int {
	q := int(v / s)
	if v < 0 && float64(q)*s != v {
		q--
	}
	return q
}
