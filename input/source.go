package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalSource adapts a tcell screen into the game's input collaborator:
// "next available intent within the window, or none". A single goroutine
// pumps PollEvent into a buffered channel; the timed wait selects on it, so
// the wait doubles as the tick governor without a separate sleep.
type TerminalSource struct {
	machine *Machine
	events  chan tcell.Event
	done    chan struct{}
}

// NewTerminalSource starts the event pump for the given screen.
func NewTerminalSource(screen tcell.Screen) *TerminalSource {
	s := &TerminalSource{
		machine: NewMachine(),
		events:  make(chan tcell.Event, 64),
		done:    make(chan struct{}),
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
	}()

	return s
}

// Poll returns an already-buffered intent without blocking. Unmapped events
// are consumed and skipped.
func (s *TerminalSource) Poll() (Intent, bool) {
	for {
		select {
		case ev := <-s.events:
			if in := s.machine.Process(ev); in != IntentNone {
				return in, true
			}
		default:
			return IntentNone, false
		}
	}
}

// Wait blocks until an intent arrives or the window elapses, whichever is
// first. It never blocks past the window.
func (s *TerminalSource) Wait(window time.Duration) (Intent, bool) {
	timer := time.NewTimer(window)
	defer timer.Stop()

	for {
		select {
		case ev := <-s.events:
			if in := s.machine.Process(ev); in != IntentNone {
				return in, true
			}
		case <-timer.C:
			return IntentNone, false
		}
	}
}

// Close stops the event pump.
func (s *TerminalSource) Close() {
	close(s.done)
}
