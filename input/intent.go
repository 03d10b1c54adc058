package input

import "github.com/lixenwraith/serpent/core"

// Intent discriminates the semantic game actions. Raw key mapping stays in
// this package; everything downstream works on intents only.
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight

	// Session control
	IntentPause   // toggle, ignored at game over
	IntentRestart // honored at game over only
	IntentQuit    // honored in every state
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentPause:
		return "pause"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	}
	return "unknown"
}

// Direction returns the steering direction for a move intent.
func (i Intent) Direction() (core.Direction, bool) {
	switch i {
	case IntentMoveUp:
		return core.Up, true
	case IntentMoveDown:
		return core.Down, true
	case IntentMoveLeft:
		return core.Left, true
	case IntentMoveRight:
		return core.Right, true
	}
	return 0, false
}
