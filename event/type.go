package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted marks a fresh running session
	// Trigger: Controller.Start | Payload: *SessionStartedPayload
	EventSessionStarted EventType = iota

	// EventSessionEnded carries the final summary
	// Trigger: Controller.End (wall, self, hazard, escape) | Payload: *engine.Summary
	EventSessionEnded

	// EventScoreChanged signals a score delta after consumption
	// Consumer: renderer HUD | Payload: *ScorePayload
	EventScoreChanged

	// EventLevelChanged signals a level-up and the new tick interval
	// Consumer: renderer HUD, audio | Payload: *LevelPayload
	EventLevelChanged

	// EventItemConsumed signals the head entered an item cell
	// Consumer: audio | Payload: *ItemPayload
	EventItemConsumed

	// EventHazardSpawned signals a hazard placed with a pending expiry
	// Payload: *ItemPayload
	EventHazardSpawned

	// EventHazardExpired signals a hazard removed by its expiry task
	// Payload: *ItemPayload
	EventHazardExpired

	// EventPaused and EventResumed toggle the pause overlay
	// Payload: nil
	EventPaused
	EventResumed

	// EventReturnedToMenu signals the menu screen is active
	// Payload: nil
	EventReturnedToMenu

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventSessionStarted: "session_started",
	EventSessionEnded:   "session_ended",
	EventScoreChanged:   "score_changed",
	EventLevelChanged:   "level_changed",
	EventItemConsumed:   "item_consumed",
	EventHazardSpawned:  "hazard_spawned",
	EventHazardExpired:  "hazard_expired",
	EventPaused:         "paused",
	EventResumed:        "resumed",
	EventReturnedToMenu: "returned_to_menu",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return typeNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // scheduler tick at emission
	Timestamp time.Time
}
