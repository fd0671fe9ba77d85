package renderer

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
)

// BoardRenderer draws the border and the faint grid
type BoardRenderer struct{}

func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{}
}

// Render implements SystemRenderer
func (r *BoardRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	if snap.Phase == engine.PhaseMenu {
		return
	}
	cols := snap.Grid.TileCount * parameter.TerminalCellColumns
	rows := snap.Grid.TileCount
	left, top := ctx.BoardX-1, ctx.BoardY-1
	right, bottom := ctx.BoardX+cols, ctx.BoardY+rows

	for x := left + 1; x < right; x++ {
		buf.Set(x, top, '─', render.RGBBorder, render.RGBBackground)
		buf.Set(x, bottom, '─', render.RGBBorder, render.RGBBackground)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, '│', render.RGBBorder, render.RGBBackground)
		buf.Set(right, y, '│', render.RGBBorder, render.RGBBackground)
	}
	buf.Set(left, top, '┌', render.RGBBorder, render.RGBBackground)
	buf.Set(right, top, '┐', render.RGBBorder, render.RGBBackground)
	buf.Set(left, bottom, '└', render.RGBBorder, render.RGBBackground)
	buf.Set(right, bottom, '┘', render.RGBBorder, render.RGBBackground)

	// Grid dots sit at each cell's left column, unshaken
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x += parameter.TerminalCellColumns {
			buf.Set(ctx.BoardX+x, ctx.BoardY+y, '·', render.RGBGridLine, render.RGBBackground)
		}
	}
}
