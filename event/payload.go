package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// SessionStartedPayload identifies the new session
type SessionStartedPayload struct {
	ID uuid.UUID
}

// ScorePayload carries the running score and the delta that produced it
type ScorePayload struct {
	Score int
	Delta int
}

// LevelPayload carries the new level and its tick interval
type LevelPayload struct {
	Level      int
	Interval   time.Duration
	SpeedLabel string
}

// ItemPayload describes an item at the moment of the event
type ItemPayload struct {
	ID   uint64
	Kind component.ItemKind
	Cell core.Cell
}
