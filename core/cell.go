package core

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by direction d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Manhattan returns the taxicab distance between two cells
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Direction is a unit step on the grid, or the zero vector while idle
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{0, 0}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
)

// IsZero reports whether the direction is idle
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Turn returns the direction after requesting next
// A horizontal change is accepted only while not moving horizontally, vertical symmetric
// Rejected requests return d unchanged
func (d Direction) Turn(next Direction) Direction {
	switch {
	case next.DX != 0 && next.DY == 0:
		if d.DX == 0 {
			return next
		}
	case next.DY != 0 && next.DX == 0:
		if d.DY == 0 {
			return next
		}
	}
	return d
}

// String returns a short name for logs
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirNone:
		return "none"
	}
	return "invalid"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
