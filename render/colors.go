package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// UI palette
var (
	RGBBackground = core.RGBBlack
	RGBGridLine   = core.RGB{R: 0, G: 26, B: 0} // green at 10% over black
	RGBBorder     = core.RGB{R: 0, G: 140, B: 0}
	RGBText       = core.RGB{R: 200, G: 200, B: 200}
	RGBTextDim    = core.RGB{R: 110, G: 110, B: 110}
	RGBTitle      = core.RGBSnake
	RGBEyes       = core.RGBBlack
)

// Color converts a core colour to a tcell true colour
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a style from foreground and background colours
func Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
