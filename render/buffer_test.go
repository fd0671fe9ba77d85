package render

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestRenderBuffer_SetGet(t *testing.T) {
	b := NewRenderBuffer(4, 3)
	b.Set(1, 2, 'x', core.RGBWhite, core.RGBGrowth)

	c := b.Get(1, 2)
	if c.Rune != 'x' || c.Fg != core.RGBWhite || c.Bg != core.RGBGrowth {
		t.Errorf("Get(1,2) = %+v, want x/white/growth", c)
	}

	// Out of bounds is ignored
	b.Set(-1, 0, 'y', core.RGBWhite, core.RGBWhite)
	b.Set(4, 0, 'y', core.RGBWhite, core.RGBWhite)
	if got := b.Get(4, 0); got != (Cell{}) {
		t.Errorf("Get out of bounds = %+v, want zero", got)
	}
}

func TestRenderBuffer_ClearAndResize(t *testing.T) {
	b := NewRenderBuffer(5, 5)
	b.Set(4, 4, 'z', core.RGBWhite, core.RGBWhite)
	b.Clear()
	if r := b.Get(4, 4).Rune; r != 0 {
		t.Errorf("rune after Clear = %q, want 0", r)
	}

	b.Resize(2, 3)
	if w, h := b.Bounds(); w != 2 || h != 3 {
		t.Errorf("Bounds() = %d,%d, want 2,3", w, h)
	}
	b.Resize(-1, 3)
	if w, _ := b.Bounds(); w != 0 {
		t.Errorf("negative width clamped to %d, want 0", w)
	}
}

func TestRenderBuffer_SetFgKeepsBackground(t *testing.T) {
	b := NewRenderBuffer(2, 1)
	b.Set(0, 0, ' ', core.RGBBlack, core.RGBHazard)
	b.SetFg(0, 0, '•', core.RGBWhite)

	c := b.Get(0, 0)
	if c.Bg != core.RGBHazard {
		t.Errorf("Bg = %v, want hazard", c.Bg)
	}
	if c.Rune != '•' || c.Fg != core.RGBWhite {
		t.Errorf("Rune/Fg = %q/%v, want •/white", c.Rune, c.Fg)
	}
}

func TestRenderBuffer_BlendBg(t *testing.T) {
	b := NewRenderBuffer(1, 1)
	b.BlendBg(0, 0, core.RGBWhite, 0.5)
	want := core.RGB{R: 127, G: 127, B: 127}
	if got := b.Get(0, 0).Bg; got != want {
		t.Errorf("BlendBg over black = %v, want %v", got, want)
	}
}

func TestRenderBuffer_Text(t *testing.T) {
	b := NewRenderBuffer(10, 1)
	n := b.Text(8, 0, "abc", core.RGBWhite, true)
	if n != 3 {
		t.Errorf("Text returned %d, want 3", n)
	}
	if b.Get(8, 0).Rune != 'a' || b.Get(9, 0).Rune != 'b' {
		t.Errorf("Text did not write visible prefix")
	}
	if !b.Get(8, 0).Bold {
		t.Errorf("Bold not set")
	}

	b.Clear()
	b.TextCentered(0, "ab", core.RGBWhite, false)
	if b.Get(4, 0).Rune != 'a' || b.Get(5, 0).Rune != 'b' {
		t.Errorf("TextCentered wrote at wrong column")
	}
}

func TestRenderBuffer_Flush(t *testing.T) {
	screen := NewMockScreen(3, 2)
	b := NewRenderBuffer(3, 2)
	b.Set(2, 1, 'q', core.RGBWhite, core.RGBBlack)
	b.Flush(screen)

	if got := screen.RuneAt(2, 1); got != 'q' {
		t.Errorf("flushed rune = %q, want q", got)
	}
	if got := screen.RuneAt(0, 0); got != ' ' {
		t.Errorf("empty cell flushed as %q, want space", got)
	}
	if screen.shows != 1 {
		t.Errorf("Show called %d times, want 1", screen.shows)
	}
}
