package parameter

import "math"

// Particle integration
const (
	// ParticleDamping is the per-tick velocity multiplier on each axis
	ParticleDamping = 0.98

	// ParticleLifeDecay is the life removed from every particle per tick
	ParticleLifeDecay = 0.02
)

// Screen shake
const (
	// ShakeHazard is the shake magnitude set on hazard consumption
	ShakeHazard = 10.0

	// ShakeDecay is the per-tick shake multiplier
	ShakeDecay = 0.9

	// ShakeSnapThreshold is the magnitude below which shake snaps to zero
	ShakeSnapThreshold = 0.1
)

// Item pulse animation
const (
	// PulseStep is the phase advanced per tick
	PulseStep = 0.1

	// PulseScale is the radius amplitude of the pulse
	PulseScale = 0.1
)

// PulsePeriod is the phase wrap point of the pulse animation
const PulsePeriod = 2 * math.Pi

// Burst presets: count, speed range (full width), size range
const (
	BurstSmallCount    = 8
	BurstSmallSpeed    = 8.0
	BurstSmallSizeMin  = 2.0
	BurstSmallSizeSpan = 4.0

	BurstHazardCount    = 20
	BurstHazardSpeed    = 15.0
	BurstHazardSizeMin  = 3.0
	BurstHazardSizeSpan = 6.0

	BurstLevelUpCount    = 30
	BurstLevelUpSpeed    = 20.0
	BurstLevelUpSizeMin  = 2.0
	BurstLevelUpSizeSpan = 5.0
)
