package engine

import (
	"time"

	"github.com/lixenwraith/serpent/core"
)

// Phase is the controller's position in its state machine.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// State carries the per-game counters outside the snake and food: score,
// tick interval, difficulty progress, phase, and terminal cause.
type State struct {
	Score      int
	HighScore  int
	FoodsEaten int

	// sinceSpeedup counts foods since the last speed increase.
	sinceSpeedup int

	TickInterval time.Duration

	Phase Phase
	Cause core.Cause
}

// NewState returns a fresh game state at the initial interval with the
// given persisted high score.
func NewState(initialInterval time.Duration, highScore int) *State {
	return &State{
		HighScore:    highScore,
		TickInterval: initialInterval,
		Phase:        PhaseRunning,
	}
}

// RecordFood applies scoring and difficulty progression for one consumed
// food and reports whether the tick interval was reduced. The interval only
// ever decreases, clamped at floor; hitting the floor is not an error.
func (st *State) RecordFood(scorePerFood, threshold int, step, floor time.Duration) bool {
	st.Score += scorePerFood
	st.FoodsEaten++
	st.sinceSpeedup++

	if st.sinceSpeedup < threshold {
		return false
	}
	st.sinceSpeedup = 0

	if st.TickInterval <= floor {
		return false
	}
	st.TickInterval -= step
	if st.TickInterval < floor {
		st.TickInterval = floor
	}
	return true
}
