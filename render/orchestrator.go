package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
	rng       *rand.Rand
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen, seed uint64) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Register adds a renderer at the specified priority, keeping sorted order via insertion
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}
	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// Buffer exposes the compositor, used by tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the pipeline: clear, render all, flush
func (o *RenderOrchestrator) RenderFrame(snap *engine.Snapshot, now time.Time) {
	w, h := o.buffer.Bounds()
	ctx := NewRenderContext(now, w, h, snap.Grid)
	if snap.Shake > 0 {
		px, py := o.ShakeOffset(snap.Shake)
		ctx.ShakeX = toCells(px, parameter.TerminalPixelsPerColumn)
		ctx.ShakeY = toCells(py, parameter.CellSize)
	}

	o.buffer.Clear()
	for _, e := range o.renderers {
		if vt, ok := e.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		e.renderer.Render(ctx, snap, o.buffer)
	}
	o.buffer.Flush(o.screen)
}

// ShakeOffset draws a pixel displacement in [-shake/2, shake/2) on each axis
func (o *RenderOrchestrator) ShakeOffset(shake float64) (float64, float64) {
	if shake <= 0 {
		return 0, 0
	}
	return (o.rng.Float64() - 0.5) * shake, (o.rng.Float64() - 0.5) * shake
}

// toCells projects a pixel displacement onto whole terminal cells
func toCells(px float64, pixelsPerCell int) int {
	return int(math.Round(px * parameter.ShakeTerminalGain / float64(pixelsPerCell)))
}
