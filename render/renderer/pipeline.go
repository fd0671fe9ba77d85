package renderer

import (
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

// RegisterAll installs the standard layer stack and returns the debug overlay for toggling
func RegisterAll(o *render.RenderOrchestrator, reg *status.Registry, debug bool) *DebugRenderer {
	o.Register(NewBoardRenderer(), render.PriorityGrid)
	o.Register(NewItemRenderer(), render.PriorityItems)
	o.Register(NewSnakeRenderer(), render.PrioritySnake)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)

	dbg := NewDebugRenderer(reg, debug)
	o.Register(dbg, render.PriorityDebug)
	return dbg
}
