package renderer

import (
	"math"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// ItemRenderer draws pills with a brightness pulse
type ItemRenderer struct{}

func NewItemRenderer() *ItemRenderer {
	return &ItemRenderer{}
}

// PulseBrightness maps a pulse phase to a brightness factor in [0.7, 1.0]
func PulseBrightness(pulse float64) float64 {
	return 0.85 + 0.15*math.Sin(pulse)
}

// Render implements SystemRenderer
func (r *ItemRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	if snap.Phase == engine.PhaseMenu {
		return
	}
	for _, it := range snap.Items {
		info := it.Kind.Info()
		color := info.Color.Scale(PulseBrightness(it.Pulse))
		glyph := '●'
		if it.Kind == component.KindHazard {
			glyph = '◆'
		}
		x, y := ctx.CellOrigin(it.Cell)
		buf.SetFg(x, y, glyph, color)
		buf.SetFg(x+1, y, ' ', color)
	}
}
