package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Cell is one terminal character cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

// RenderBuffer is a compositor backed by a cell array with touched tracking
// Untouched cells get RGBBackground at flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RGBText, Bg: RGBBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes an opaque cell
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFg writes rune and foreground, keeping the existing background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBg updates the background, keeping rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// BlendBg alpha-blends bg over the existing background
func (b *RenderBuffer) BlendBg(x, y int, bg core.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	base := RGBBackground
	if b.touched[idx] {
		base = b.cells[idx].Bg
	}
	b.cells[idx].Bg = base.Blend(bg, alpha)
	b.touched[idx] = true
}

// Text writes s starting at (x, y) and returns the number of columns written
func (b *RenderBuffer) Text(x, y int, s string, fg core.RGB, bold bool) int {
	n := 0
	for _, r := range s {
		if b.inBounds(x+n, y) {
			dst := &b.cells[y*b.width+x+n]
			dst.Rune = r
			dst.Fg = fg
			dst.Bold = bold
		}
		n++
	}
	return n
}

// TextCentered writes s centred on row y
func (b *RenderBuffer) TextCentered(y int, s string, fg core.RGB, bold bool) {
	x := (b.width - len([]rune(s))) / 2
	b.Text(max(x, 0), y, s, fg, bold)
}

// Flush writes every cell to the screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			bg := RGBBackground
			if b.touched[idx] {
				bg = c.Bg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, Style(c.Fg, bg).Bold(c.Bold))
		}
	}
	screen.Show()
}
