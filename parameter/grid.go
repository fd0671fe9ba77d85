package parameter

// Board geometry, in pixels. The board is square
const (
	// CanvasSize is the board edge length in pixels
	CanvasSize = 400

	// CellSize is the edge length of one grid cell in pixels
	CellSize = 20
)

// MinTileCount is the smallest board edge, in cells, the config accepts
const MinTileCount = 5
