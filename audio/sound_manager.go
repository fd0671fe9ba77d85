package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and a mixer of one-shot cues
// All methods are safe without a successful Initialize; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     atomic.Bool
	seed        uint64
	played      atomic.Int64
}

// NewSoundManager creates a manager; enabled gates playback at runtime
func NewSoundManager(enabled bool) *SoundManager {
	sm := &SoundManager{mixer: &beep.Mixer{}}
	sm.enabled.Store(enabled)
	return sm
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetEnabled toggles playback without touching the device
func (sm *SoundManager) SetEnabled(v bool) {
	sm.enabled.Store(v)
}

// Enabled reports whether cues are played
func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// Played returns the number of cues handed to the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play mixes cue into the output
func (sm *SoundManager) Play(cue Cue) {
	if cue == CueNone || !sm.enabled.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	sm.seed++
	s := Build(cue, sampleRate, sm.seed)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
