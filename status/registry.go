package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the game
const (
	KeyTicks          = "engine.ticks"
	KeyEventsDropped  = "engine.events_dropped"
	KeySpawnPlaced    = "spawn.placed"
	KeySpawnFailed    = "spawn.failed"
	KeyHazardExpired  = "hazard.expired"
	KeyHazardNoop     = "hazard.expiry_noop"
	KeyParticles      = "effect.particles"
	KeyShake          = "effect.shake"
	KeySessionID      = "session.id"
	KeySessionPhase   = "session.phase"
	KeySessionsPlayed = "session.played"
	KeyAudioEnabled   = "audio.enabled"
)

// Registry is the central metrics facade
// Writers cache pointers at construction and update atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value", grouped by type then sorted by key
// Used for the debug overlay and the exit log line
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, k+"="+strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, k+"="+v.Load())
	})
	return lines
}
