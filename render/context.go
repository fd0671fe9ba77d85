package render

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// RenderContext provides frame layout to renderers, passed by value
type RenderContext struct {
	Now time.Time

	// Terminal dimensions
	Width  int
	Height int

	// Board origin in terminal cells, shake offset already applied
	BoardX int
	BoardY int

	// Shake offset in terminal cells
	ShakeX int
	ShakeY int
}

// NewRenderContext centres the board inside a width x height terminal
// The board occupies TileCount*TerminalCellColumns columns plus a one cell border
func NewRenderContext(now time.Time, width, height int, grid core.Grid) RenderContext {
	boardW := grid.TileCount*parameter.TerminalCellColumns + 2
	boardH := grid.TileCount + 2
	top := parameter.HUDHeight
	return RenderContext{
		Now:    now,
		Width:  width,
		Height: height,
		BoardX: max((width-boardW)/2, 0) + 1,
		BoardY: top + max((height-top-boardH)/2, 0) + 1,
	}
}

// CellOrigin returns the terminal position of the left column of grid cell c
func (ctx RenderContext) CellOrigin(c core.Cell) (int, int) {
	return ctx.BoardX + ctx.ShakeX + c.X*parameter.TerminalCellColumns, ctx.BoardY + ctx.ShakeY + c.Y
}
