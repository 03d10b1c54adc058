package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic intents.
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the stock key table.
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process maps a terminal event to an intent. Unmapped keys and non-key
// events yield IntentNone; they are normal input, not faults.
func (m *Machine) Process(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}

	if key.Key() == tcell.KeyRune {
		if in, ok := m.keyTable.Runes[key.Rune()]; ok {
			return in
		}
		return IntentNone
	}
	if in, ok := m.keyTable.Keys[key.Key()]; ok {
		return in
	}
	return IntentNone
}
