package parameter

import "time"

// Audio cue timing
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	AudioEatDuration     = 60 * time.Millisecond
	AudioBonusDuration   = 120 * time.Millisecond
	AudioHazardDuration  = 400 * time.Millisecond
	AudioLevelUpDuration = 300 * time.Millisecond

	// AudioVolume is the peak amplitude of generated tones
	AudioVolume = 0.2
)
