package component

import "github.com/lixenwraith/vi-snake/core"

// Particle is a cosmetic spark in pixel space; never read by simulation logic
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // [0,1], doubles as render alpha
	Color  core.RGB
	Size   float64
}

// EffectField is the cosmetic state advanced every tick
type EffectField struct {
	Particles []Particle
	Shake     float64
}
