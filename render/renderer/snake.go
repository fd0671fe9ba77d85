package renderer

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
)

// SnakeRenderer draws the snake body as a fading block trail with a directional head
type SnakeRenderer struct{}

func NewSnakeRenderer() *SnakeRenderer {
	return &SnakeRenderer{}
}

// SegmentAlpha returns the opacity of segment i in a body of n segments
func SegmentAlpha(i, n int) float64 {
	if n <= 1 || i == 0 {
		return 1
	}
	return max(parameter.SnakeBodyMinAlpha, 1-float64(i)/float64(n)*parameter.SnakeBodyFade)
}

// headGlyphs are the eyes drawn in the two head columns, by direction
func headGlyphs(d core.Direction) (rune, rune) {
	switch d {
	case core.DirUp:
		return '▀', '▀'
	case core.DirDown:
		return '▄', '▄'
	case core.DirLeft:
		return '•', ' '
	case core.DirRight:
		return ' ', '•'
	}
	return '•', '•'
}

// Render implements SystemRenderer
func (r *SnakeRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	if snap.Phase == engine.PhaseMenu {
		return
	}
	n := len(snap.Snake)
	// Tail first so the head wins on overlap after a self collision
	for i := n - 1; i >= 0; i-- {
		x, y := ctx.CellOrigin(snap.Snake[i])
		alpha := SegmentAlpha(i, n)
		for col := 0; col < parameter.TerminalCellColumns; col++ {
			buf.Set(x+col, y, ' ', render.RGBEyes, render.RGBBackground.Blend(core.RGBSnake, alpha))
		}
		if i == 0 {
			l, rr := headGlyphs(snap.Direction)
			buf.SetFg(x, y, l, render.RGBEyes)
			buf.SetFg(x+1, y, rr, render.RGBEyes)
		}
	}
}
