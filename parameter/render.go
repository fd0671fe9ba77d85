package parameter

// Terminal board projection
const (
	// TerminalCellColumns is the number of terminal columns drawn per grid cell
	TerminalCellColumns = 2

	// TerminalPixelsPerColumn converts shake jitter from pixels to columns
	TerminalPixelsPerColumn = CellSize / TerminalCellColumns

	// ShakeTerminalGain amplifies pixel shake on the coarse terminal grid
	// At ShakeHazard the board moves up to 2 columns and 1 row
	ShakeTerminalGain = 3.0
)

// Snake body fade along its length
const (
	// SnakeBodyMinAlpha is the opacity floor of the tail end
	SnakeBodyMinAlpha = 0.3

	// SnakeBodyFade is the opacity lost from head to tail
	SnakeBodyFade = 0.7
)

// Raster look, in pixels unless noted
const (
	// GridLineAlpha is the opacity of the green grid lines
	GridLineAlpha = 0.1

	// HeadInset and BodyInset shrink segment squares inside their cell
	HeadInset = 2
	BodyInset = 1

	// EyeSize and EyeOffset place the two head eyes
	EyeSize   = 3
	EyeOffset = 5

	// PillInset is subtracted from the cell size before halving into the pill radius
	PillInset = 4

	// Highlight is the inner sheen on non-hazard pills
	HighlightAlpha  = 0.3
	HighlightScale  = 0.6
	HighlightOffset = 2
)
