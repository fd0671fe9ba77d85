package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

func setRGB(dc *gg.Context, c core.RGB, alpha float64) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(alpha*255))
}

// Rasterize draws the board at pixel resolution: grid, pills, snake and particles
// shakeX/shakeY offset the whole scene in pixels
func Rasterize(snap *engine.Snapshot, shakeX, shakeY float64) image.Image {
	return rasterContext(snap, shakeX, shakeY).Image()
}

func rasterContext(snap *engine.Snapshot, shakeX, shakeY float64) *gg.Context {
	g := snap.Grid
	size := g.PixelSize()
	if size <= 0 {
		size = 1
	}
	dc := gg.NewContext(size, size)
	setRGB(dc, core.RGBBlack, 1)
	dc.Clear()

	dc.Push()
	dc.Translate(shakeX, shakeY)

	// Grid lines
	setRGB(dc, core.RGBSnake, parameter.GridLineAlpha)
	dc.SetLineWidth(1)
	for i := 0; i <= g.TileCount; i++ {
		p := float64(i * g.CellSize)
		dc.DrawLine(p, 0, p, float64(size))
		dc.DrawLine(0, p, float64(size), p)
	}
	dc.Stroke()

	drawItems(dc, snap)
	drawSnake(dc, snap)
	drawParticles(dc, snap)

	dc.Pop()
	return dc
}

func drawItems(dc *gg.Context, snap *engine.Snapshot) {
	g := snap.Grid
	base := float64(g.CellSize-parameter.PillInset) / 2
	for _, it := range snap.Items {
		cx, cy := g.CellCenter(it.Cell)
		radius := base * (1 + 0.1*math.Sin(it.Pulse))
		setRGB(dc, it.Kind.Info().Color, 1)
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()

		if it.Kind == component.KindHazard {
			continue
		}
		setRGB(dc, core.RGBWhite, parameter.HighlightAlpha)
		dc.DrawCircle(cx-parameter.HighlightOffset, cy-parameter.HighlightOffset, radius*parameter.HighlightScale)
		dc.Fill()
	}
}

func drawSnake(dc *gg.Context, snap *engine.Snapshot) {
	g := snap.Grid
	n := len(snap.Snake)
	for i := n - 1; i >= 0; i-- {
		r := g.CellToPixel(snap.Snake[i])
		if i == 0 {
			setRGB(dc, core.RGBSnake, 1)
			dc.DrawRectangle(r.X+parameter.HeadInset, r.Y+parameter.HeadInset, r.W-2*parameter.HeadInset, r.H-2*parameter.HeadInset)
			dc.Fill()
			drawEyes(dc, r, snap.Direction)
			continue
		}
		alpha := max(parameter.SnakeBodyMinAlpha, 1-float64(i)/float64(n)*parameter.SnakeBodyFade)
		setRGB(dc, core.RGBSnake, alpha)
		dc.DrawRectangle(r.X+parameter.BodyInset, r.Y+parameter.BodyInset, r.W-2*parameter.BodyInset, r.H-2*parameter.BodyInset)
		dc.Fill()
	}
}

// drawEyes places two eyes toward the direction of travel
func drawEyes(dc *gg.Context, r core.Rect, d core.Direction) {
	setRGB(dc, core.RGBBlack, 1)
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	const s = parameter.EyeSize
	const o = parameter.EyeOffset
	var ex1, ey1, ex2, ey2 float64
	switch d {
	case core.DirUp:
		ex1, ey1, ex2, ey2 = cx-o, cy-o, cx+o-s, cy-o
	case core.DirDown:
		ex1, ey1, ex2, ey2 = cx-o, cy+o-s, cx+o-s, cy+o-s
	case core.DirLeft:
		ex1, ey1, ex2, ey2 = cx-o, cy-o, cx-o, cy+o-s
	default:
		ex1, ey1, ex2, ey2 = cx+o-s, cy-o, cx+o-s, cy+o-s
	}
	dc.DrawRectangle(ex1, ey1, s, s)
	dc.DrawRectangle(ex2, ey2, s, s)
	dc.Fill()
}

func drawParticles(dc *gg.Context, snap *engine.Snapshot) {
	for i := range snap.Particles {
		p := &snap.Particles[i]
		setRGB(dc, p.Color, p.Life)
		dc.DrawRectangle(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
		dc.Fill()
	}
}

// EncodePNG writes a raster of snap to w, offset by the pixel shake
func EncodePNG(w io.Writer, snap *engine.Snapshot, shakeX, shakeY float64) error {
	return rasterContext(snap, shakeX, shakeY).EncodePNG(w)
}

// SavePNG writes a timestamped screenshot into dir and returns its path
func SavePNG(dir string, snap *engine.Snapshot, now time.Time, shakeX, shakeY float64) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("vi-snake-%s.png", now.Format("20060102-150405.000")))
	err := writeFile(path, func(w io.Writer) error {
		return EncodePNG(w, snap, shakeX, shakeY)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// writeFile creates path and fills it with encode, removing it on any failure
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("screenshot encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("screenshot close: %w", err)
	}
	return nil
}
