package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"golang.org/x/exp/rand"
)

// ToneGenerator plays a sine sweep from startFreq to endFreq with a linear fade-out
type ToneGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	total     int
	pos       int
	phase     float64
}

// NewToneGenerator creates a finite sweep of the given duration
func NewToneGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Attack over the first 5%, then linear release
		env := 1 - progress
		if progress < 0.05 {
			env = progress / 0.05
		}
		sample := env * math.Sin(2*math.Pi*g.phase)

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator generates exponentially decaying noise with a low rumble
type NoiseGenerator struct {
	sr  beep.SampleRate
	rng *rand.Rand
	pos int
}

// NewNoiseGenerator creates an endless noise source; wrap with beep.Take
func NewNoiseGenerator(sr beep.SampleRate, seed uint64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:  sr,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 8)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*80*t)

		sample := envelope * (0.4*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
