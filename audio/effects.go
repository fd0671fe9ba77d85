package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/parameter"
)

// newVolume wraps s with a linear gain; zero or negative gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Build returns a finite streamer for cue, nil for CueNone
func Build(cue Cue, sr beep.SampleRate, seed uint64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueEat:
		s = NewToneGenerator(sr, 660, 880, parameter.AudioEatDuration)
	case CueBonus:
		half := parameter.AudioBonusDuration / 2
		s = beep.Seq(
			NewToneGenerator(sr, 880, 880, half),
			NewToneGenerator(sr, 1320, 1320, half),
		)
	case CueHazard:
		n := sr.N(parameter.AudioHazardDuration)
		s = beep.Take(n, beep.Mix(
			NewToneGenerator(sr, 220, 110, parameter.AudioHazardDuration),
			beep.Take(n, NewNoiseGenerator(sr, seed)),
		))
	case CueLevelUp:
		step := parameter.AudioLevelUpDuration / 3
		s = beep.Seq(
			NewToneGenerator(sr, 523, 523, step),
			NewToneGenerator(sr, 659, 659, step),
			NewToneGenerator(sr, 784, 784, step),
		)
	case CueGameOver:
		s = NewToneGenerator(sr, 440, 110, 2*parameter.AudioHazardDuration)
	default:
		return nil
	}
	return newVolume(s, parameter.AudioVolume)
}

// Length returns the number of samples a cue renders at sr
func Length(cue Cue, sr beep.SampleRate) int {
	s := Build(cue, sr, 1)
	if s == nil {
		return 0
	}
	buf := make([][2]float64, sr.N(50*time.Millisecond))
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}
