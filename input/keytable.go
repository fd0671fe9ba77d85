package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents per context
// Runes are stored lower-case; lookups fold case
type KeyTable struct {
	Keys  map[Context]map[tcell.Key]Intent
	Runes map[Context]map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows, WASD and hjkl steer
func DefaultKeyTable() *KeyTable {
	shared := map[tcell.Key]Intent{
		tcell.KeyCtrlC: IntentQuit,
		tcell.KeyCtrlQ: IntentQuit,
	}
	playKeys := map[tcell.Key]Intent{
		tcell.KeyUp:     IntentUp,
		tcell.KeyDown:   IntentDown,
		tcell.KeyLeft:   IntentLeft,
		tcell.KeyRight:  IntentRight,
		tcell.KeyEscape: IntentEscape,
	}
	screenKeys := map[tcell.Key]Intent{
		tcell.KeyEnter:  IntentStart,
		tcell.KeyEscape: IntentEscape,
	}
	for k, v := range shared {
		playKeys[k] = v
		screenKeys[k] = v
	}

	return &KeyTable{
		Keys: map[Context]map[tcell.Key]Intent{
			ContextPlay:   playKeys,
			ContextScreen: screenKeys,
		},
		Runes: map[Context]map[rune]Intent{
			ContextPlay: {
				'w': IntentUp, 'k': IntentUp,
				's': IntentDown, 'j': IntentDown,
				'a': IntentLeft, 'h': IntentLeft,
				'd': IntentRight, 'l': IntentRight,
				' ': IntentPause,
				'p': IntentScreenshot,
			},
			ContextScreen: {
				's': IntentStart,
				' ': IntentStart,
				'q': IntentQuit,
				'p': IntentScreenshot,
			},
		},
	}
}

// Lookup resolves a key press in ctx
func (kt *KeyTable) Lookup(ctx Context, key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[ctx][unicode.ToLower(r)]
	}
	return kt.Keys[ctx][key]
}

// Translate maps any tcell event to an intent
func (kt *KeyTable) Translate(ctx Context, ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Lookup(ctx, ev.Key(), ev.Rune())
	case *tcell.EventFocus:
		if !ev.Focused {
			return IntentFocusLost
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// Merge applies override bindings on top of kt
func (kt *KeyTable) Merge(over *KeyTable) {
	if over == nil {
		return
	}
	for ctx, m := range over.Keys {
		if kt.Keys[ctx] == nil {
			kt.Keys[ctx] = make(map[tcell.Key]Intent)
		}
		for k, v := range m {
			kt.Keys[ctx][k] = v
		}
	}
	for ctx, m := range over.Runes {
		if kt.Runes[ctx] == nil {
			kt.Runes[ctx] = make(map[rune]Intent)
		}
		for r, v := range m {
			kt.Runes[ctx][r] = v
		}
	}
}
