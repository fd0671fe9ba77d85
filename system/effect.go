package system

import (
	"math"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// Burst describes a radial particle emission
type Burst struct {
	Count    int
	Speed    float64 // velocity per axis spans [-Speed/2, Speed/2)
	SizeMin  float64
	SizeSpan float64
}

var (
	BurstSmall   = Burst{parameter.BurstSmallCount, parameter.BurstSmallSpeed, parameter.BurstSmallSizeMin, parameter.BurstSmallSizeSpan}
	BurstHazard  = Burst{parameter.BurstHazardCount, parameter.BurstHazardSpeed, parameter.BurstHazardSizeMin, parameter.BurstHazardSizeSpan}
	BurstLevelUp = Burst{parameter.BurstLevelUpCount, parameter.BurstLevelUpSpeed, parameter.BurstLevelUpSizeMin, parameter.BurstLevelUpSizeSpan}
)

// Effects owns the cosmetic particle, shake and pulse animation
type Effects struct {
	rng *rand.Rand

	statParticles *atomic.Int64
	statShake     *status.AtomicFloat
}

// NewEffects creates the effect system; reg may be nil
func NewEffects(rng *rand.Rand, reg *status.Registry) *Effects {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Effects{
		rng:           rng,
		statParticles: reg.Ints.Get(status.KeyParticles),
		statShake:     reg.Floats.Get(status.KeyShake),
	}
}

// Emit appends b.Count particles at pixel (x, y)
func (e *Effects) Emit(f *component.EffectField, x, y float64, color core.RGB, b Burst) {
	for i := 0; i < b.Count; i++ {
		f.Particles = append(f.Particles, component.Particle{
			X:     x,
			Y:     y,
			VX:    (e.rng.Float64() - 0.5) * b.Speed,
			VY:    (e.rng.Float64() - 0.5) * b.Speed,
			Life:  1,
			Color: color,
			Size:  b.SizeMin + e.rng.Float64()*b.SizeSpan,
		})
	}
}

// ItemConsumed emits the small burst at the item cell in its kind colour
func (e *Effects) ItemConsumed(gs *engine.GameState, it *component.Item) {
	x, y := gs.Grid.CellCenter(it.Cell)
	e.Emit(&gs.Effects, x, y, it.Kind.Info().Color, BurstSmall)
}

// HazardHit emits the explosion and starts the screen shake
func (e *Effects) HazardHit(gs *engine.GameState, it *component.Item) {
	x, y := gs.Grid.CellCenter(it.Cell)
	e.Emit(&gs.Effects, x, y, core.RGBBlast, BurstHazard)
	gs.Effects.Shake = parameter.ShakeHazard
}

// LevelUp emits the celebration burst at the board centre
func (e *Effects) LevelUp(gs *engine.GameState) {
	x, y := gs.Grid.Center()
	e.Emit(&gs.Effects, x, y, core.RGBSuccess, BurstLevelUp)
}

// Advance moves the animation one tick forward
func (e *Effects) Advance(gs *engine.GameState) {
	f := &gs.Effects

	// Compact in place, dropping dead particles
	alive := f.Particles[:0]
	for _, p := range f.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= parameter.ParticleDamping
		p.VY *= parameter.ParticleDamping
		p.Life -= parameter.ParticleLifeDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	clear(f.Particles[len(alive):])
	f.Particles = alive

	if f.Shake > 0 {
		f.Shake *= parameter.ShakeDecay
		if f.Shake < parameter.ShakeSnapThreshold {
			f.Shake = 0
		}
	}

	for _, it := range gs.Items.All() {
		it.Pulse = math.Mod(it.Pulse+parameter.PulseStep, parameter.PulsePeriod)
	}

	e.statParticles.Store(int64(len(f.Particles)))
	e.statShake.Set(f.Shake)
}
