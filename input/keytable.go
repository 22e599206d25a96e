package input

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyEnter:  IntentStop,
		},
		Runes: map[rune]IntentType{
			' ': IntentToss,
			'r': IntentToss,
			's': IntentStop,
			'x': IntentReset,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Translate maps a terminal event to an intent; unbound input yields IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: kt.TranslateKey(ev.Key(), ev.Rune())}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

// TranslateKey maps a key code and rune to an intent
func (kt *KeyTable) TranslateKey(key tcell.Key, r rune) IntentType {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return kt.Runes[r]
}

// Help lists the rune bindings per intent, e.g. "space/r toss"
func (kt *KeyTable) Help(intents ...IntentType) string {
	var parts []string
	for _, it := range intents {
		var keys []string
		for r, bound := range kt.Runes {
			if bound != it {
				continue
			}
			if r == ' ' {
				keys = append(keys, "space")
			} else {
				keys = append(keys, string(r))
			}
		}
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)
		parts = append(parts, strings.Join(keys, "/")+" "+it.String())
	}
	return strings.Join(parts, "  ")
}
