package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Named keys accepted in bindings
var keyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
}

// Rune aliases for keys that can't be bare single characters in config
var runeAliases = map[string]rune{
	"space": ' ',
}

// Context section names used in config
var contextNames = map[string]Context{
	"play":   ContextPlay,
	"screen": ContextScreen,
}

// ParseBindings builds a sparse override table from config sections
// sections: context name -> key name -> action name
func ParseBindings(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[Context]map[tcell.Key]Intent),
		Runes: make(map[Context]map[rune]Intent),
	}

	for section, binds := range sections {
		ctx, ok := contextNames[section]
		if !ok {
			return nil, fmt.Errorf("keys: unknown context %q", section)
		}
		for keyName, action := range binds {
			intent, ok := actionIntents[strings.ToLower(action)]
			if !ok {
				return nil, fmt.Errorf("keys.%s: unknown action %q for %q (valid: %s)",
					section, action, keyName, strings.Join(ActionNames(), ", "))
			}

			key, r, err := parseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", section, err)
			}
			if key == tcell.KeyRune {
				if kt.Runes[ctx] == nil {
					kt.Runes[ctx] = make(map[rune]Intent)
				}
				kt.Runes[ctx][r] = intent
			} else {
				if kt.Keys[ctx] == nil {
					kt.Keys[ctx] = make(map[tcell.Key]Intent)
				}
				kt.Keys[ctx][key] = intent
			}
		}
	}
	return kt, nil
}

func parseKey(name string) (tcell.Key, rune, error) {
	lower := strings.ToLower(name)
	if k, ok := keyNames[lower]; ok {
		return k, 0, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return tcell.KeyRune, r, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return tcell.KeyRune, r, nil
	}
	return tcell.KeyNUL, 0, fmt.Errorf("unknown key %q", name)
}
