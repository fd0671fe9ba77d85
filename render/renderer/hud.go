package renderer

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// HUDRenderer draws the score line above the board
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// FormatHUD builds the status line text
func FormatHUD(h engine.HUD) string {
	secs := int(h.Elapsed.Seconds())
	return fmt.Sprintf("SCORE %d   LEVEL %d   SPEED %s   TIME %02d:%02d",
		h.Score, h.Level, h.SpeedLabel, secs/60, secs%60)
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	if snap.Phase == engine.PhaseMenu {
		return
	}
	buf.TextCentered(0, FormatHUD(snap.HUD), render.RGBText, true)
}
