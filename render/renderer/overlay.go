package renderer

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// OverlayRenderer draws the menu, pause and end screens over the board
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

var menuLines = []string{
	"move    arrows  wasd  hjkl",
	"pause   space",
	"menu    esc (while paused)",
	"shot    p",
	"quit    q  ctrl+c",
}

// SummaryLines formats the end screen body
func SummaryLines(s *engine.Summary) []string {
	return []string{
		fmt.Sprintf("cause        %s", s.Reason),
		fmt.Sprintf("score        %d", s.Score),
		fmt.Sprintf("level        %d", s.Level),
		fmt.Sprintf("items        %d", s.ItemsConsumed),
		fmt.Sprintf("survived     %ds", s.SurvivalSeconds),
		fmt.Sprintf("efficiency   %.2f", s.Efficiency),
	}
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	mid := ctx.Height / 2
	switch snap.Phase {
	case engine.PhaseMenu:
		buf.TextCentered(mid-4, "V I - S N A K E", render.RGBTitle, true)
		for i, l := range menuLines {
			buf.TextCentered(mid-1+i, l, render.RGBTextDim, false)
		}
		buf.TextCentered(mid+len(menuLines)+1, "press enter to start", render.RGBText, true)

	case engine.PhasePaused:
		buf.TextCentered(mid-1, "PAUSED", render.RGBText, true)
		buf.TextCentered(mid+1, "space resume   esc menu", render.RGBTextDim, false)

	case engine.PhaseEnded:
		if snap.Summary == nil {
			return
		}
		lines := SummaryLines(snap.Summary)
		top := mid - (len(lines)+4)/2
		buf.TextCentered(top, "GAME OVER", render.RGBText, true)
		for i, l := range lines {
			buf.TextCentered(top+2+i, l, render.RGBText, false)
		}
		buf.TextCentered(top+3+len(lines), snap.Summary.Rating, snap.Summary.RatingColor, true)
		buf.TextCentered(top+5+len(lines), "enter restart   esc menu   q quit", render.RGBTextDim, false)
	}
}
