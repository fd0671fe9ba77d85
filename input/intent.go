package input

import "github.com/lixenwraith/vi-snake/core"

// Intent is the semantic action behind an input event
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Session
	IntentPause  // Space toggles
	IntentEscape // back to menu while paused
	IntentStart  // Enter, s on menu and end screens

	// Shell
	IntentQuit
	IntentScreenshot
	IntentFocusLost
	IntentResize
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentUp:         "up",
	IntentDown:       "down",
	IntentLeft:       "left",
	IntentRight:      "right",
	IntentPause:      "pause",
	IntentEscape:     "escape",
	IntentStart:      "start",
	IntentQuit:       "quit",
	IntentScreenshot: "screenshot",
	IntentFocusLost:  "focus_lost",
	IntentResize:     "resize",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Direction returns the steering vector of a direction intent
func (i Intent) Direction() (core.Direction, bool) {
	switch i {
	case IntentUp:
		return core.DirUp, true
	case IntentDown:
		return core.DirDown, true
	case IntentLeft:
		return core.DirLeft, true
	case IntentRight:
		return core.DirRight, true
	}
	return core.DirNone, false
}

// Context selects the binding set in effect
type Context uint8

const (
	ContextScreen Context = iota // menu and end screens
	ContextPlay                  // running or paused
)
