package input

import (
	"maps"
	"slices"
)

// actionIntents maps config action names to intents
var actionIntents = map[string]Intent{
	"none":       IntentNone,
	"up":         IntentUp,
	"down":       IntentDown,
	"left":       IntentLeft,
	"right":      IntentRight,
	"pause":      IntentPause,
	"escape":     IntentEscape,
	"start":      IntentStart,
	"quit":       IntentQuit,
	"screenshot": IntentScreenshot,
}

// ActionNames returns the recognised action names, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionIntents))
}
