package renderer

import (
	"math"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
)

// ParticleRenderer projects pixel-space sparks onto terminal columns
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	if len(snap.Particles) == 0 {
		return
	}
	cols := snap.Grid.TileCount * parameter.TerminalCellColumns
	rows := snap.Grid.TileCount
	for i := range snap.Particles {
		p := &snap.Particles[i]
		col := int(math.Floor(p.X / parameter.TerminalPixelsPerColumn))
		row := snap.Grid.PixelToCell(p.X, p.Y).Y
		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}
		x := ctx.BoardX + ctx.ShakeX + col
		y := ctx.BoardY + ctx.ShakeY + row
		glyph := '·'
		if p.Size >= 3 {
			glyph = '*'
		}
		under := buf.Get(x, y).Bg
		buf.SetFg(x, y, glyph, under.Blend(p.Color, p.Life))
	}
}
