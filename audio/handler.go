package audio

import "github.com/lixenwraith/vi-snake/event"

// Handler plays cues for game events; T is the router context, unused
type Handler[T any] struct {
	sm *SoundManager
}

func NewHandler[T any](sm *SoundManager) *Handler[T] {
	return &Handler[T]{sm: sm}
}

// HandleEvent implements event.Handler
func (h *Handler[T]) HandleEvent(_ T, ev event.GameEvent) {
	h.sm.Play(CueFor(ev))
}

// EventTypes implements event.Handler
func (h *Handler[T]) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventLevelChanged,
		event.EventHazardSpawned,
		event.EventSessionEnded,
	}
}
