package audio

import "github.com/lixenwraith/vi-snake/event"

// Cue names a sound effect
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueBonus
	CueHazard
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueBonus:
		return "bonus"
	case CueHazard:
		return "hazard"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	}
	return "none"
}

// CueFor maps a game event to its sound, CueNone when silent
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScorePayload); ok && p.Delta > 1 {
			return CueBonus
		}
		return CueEat
	case event.EventLevelChanged:
		return CueLevelUp
	case event.EventSessionEnded:
		return CueGameOver
	case event.EventHazardSpawned:
		return CueHazard
	}
	return CueNone
}
