package renderer

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

// DebugRenderer lists the status registry in the bottom-left corner
type DebugRenderer struct {
	reg     *status.Registry
	visible atomic.Bool
}

func NewDebugRenderer(reg *status.Registry, visible bool) *DebugRenderer {
	r := &DebugRenderer{reg: reg}
	r.visible.Store(visible)
	return r
}

// IsVisible implements VisibilityToggle
func (r *DebugRenderer) IsVisible() bool {
	return r.visible.Load()
}

// SetVisible toggles the overlay, safe from the config watcher
func (r *DebugRenderer) SetVisible(v bool) {
	r.visible.Store(v)
}

// Render implements SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	lines := r.reg.Lines()
	y := ctx.Height - len(lines)
	for i, l := range lines {
		buf.Text(0, y+i, l, render.RGBTextDim, false)
	}
}
