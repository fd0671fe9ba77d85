package system

import (
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// LevelFor returns the level reached at score
func LevelFor(score int) int {
	if score < 0 {
		score = 0
	}
	return score/parameter.PointsPerLevel + 1
}

// Pace maps levels to tick intervals
type Pace struct {
	Base  time.Duration // level 1
	Floor time.Duration
	Step  time.Duration // reduction per level
}

// DefaultPace is 200ms at level 1, 15ms faster per level, never below 80ms
func DefaultPace() Pace {
	return Pace{
		Base:  parameter.BaseTickInterval,
		Floor: parameter.MinTickInterval,
		Step:  parameter.TickIntervalStep,
	}
}

// Interval returns the tick interval for level
func (p Pace) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := p.Base - time.Duration(level-1)*p.Step
	return max(d, p.Floor)
}

// SpeedLabel names a tick interval for the HUD
func SpeedLabel(interval time.Duration) string {
	switch {
	case interval >= parameter.SpeedSlowMin:
		return "Slow"
	case interval >= parameter.SpeedNormalMin:
		return "Normal"
	case interval >= parameter.SpeedFastMin:
		return "Fast"
	default:
		return "Extreme"
	}
}
