package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps raw keys to intents.
type KeyTable struct {
	Runes map[rune]Intent
	Keys  map[tcell.Key]Intent
}

// DefaultKeyTable returns the stock bindings: arrows or hjkl to steer,
// p/space to pause, r to restart, q/Esc/Ctrl+C to quit.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'h': IntentMoveLeft,
			'j': IntentMoveDown,
			'k': IntentMoveUp,
			'l': IntentMoveRight,
			'p': IntentPause,
			' ': IntentPause,
			'r': IntentRestart,
			'R': IntentRestart,
			'q': IntentQuit,
			'Q': IntentQuit,
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
	}
}
