package engine

import (
	"errors"
	"math/rand"

	"github.com/lixenwraith/serpent/core"
)

// ErrBoardFull signals that no free interior cell remains for food. It is
// the win/terminal condition, not a fault.
var ErrBoardFull = errors.New("no free cell for food")

// Food owns the single active food cell and its respawn logic.
type Food struct {
	rng    *rand.Rand
	pos    core.Coord
	active bool

	minHeadDistance int
	maxAttempts     int
}

// NewFood creates an unspawned food with the given spawn tuning.
func NewFood(rng *rand.Rand, minHeadDistance, maxAttempts int) *Food {
	return &Food{
		rng:             rng,
		minHeadDistance: minHeadDistance,
		maxAttempts:     maxAttempts,
	}
}

// Position returns the active food cell; ok is false between consumption
// and the completed respawn, and before the first spawn.
func (f *Food) Position() (core.Coord, bool) {
	return f.pos, f.active
}

// Spawn places food on a free interior cell of the height x width board and
// returns it. Random draws within the attempt budget are preferred when
// their Manhattan distance from the snake's head reaches the minimum;
// otherwise the most distant candidate seen wins. With the budget exhausted
// and no free candidate drawn, a deterministic scan still finds a free cell
// whenever one exists. Returns ErrBoardFull only when the snake fills the
// board.
func (f *Food) Spawn(height, width int, snake *Snake) (core.Coord, error) {
	f.active = false

	if height*width-snake.Length() <= 0 {
		return core.Coord{}, ErrBoardFull
	}

	head := snake.Head()
	var best core.Coord
	bestDistance := -1

	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		c := core.Coord{Row: f.rng.Intn(height), Col: f.rng.Intn(width)}
		if snake.Occupies(c) {
			continue
		}

		distance := c.Manhattan(head)
		if distance >= f.minHeadDistance {
			return f.place(c), nil
		}
		if distance > bestDistance {
			best = c
			bestDistance = distance
		}
	}

	if bestDistance >= 0 {
		return f.place(best), nil
	}

	// The budget produced no free cell at all. On a near-full board that is
	// a real possibility, so fall back to scanning for one.
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := core.Coord{Row: row, Col: col}
			if !snake.Occupies(c) {
				return f.place(c), nil
			}
		}
	}
	return core.Coord{}, ErrBoardFull
}

func (f *Food) place(c core.Coord) core.Coord {
	f.pos = c
	f.active = true
	return c
}
