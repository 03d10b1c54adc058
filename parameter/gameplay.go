package parameter

import "time"

// Board geometry (interior cells, border excluded)
const (
	BoardHeight = 18
	BoardWidth  = 38
)

// Initial snake placement: horizontal, head rightmost, facing right
const (
	InitialSnakeLength = 3
	InitialHeadRow     = 5
	InitialHeadCol     = 5
)

// Tick timing and difficulty progression
const (
	// InitialTickInterval is the input wait per tick at game start
	InitialTickInterval = 150 * time.Millisecond

	// MinTickInterval is the fastest the game ever gets
	MinTickInterval = 50 * time.Millisecond

	// SpeedStep is how much the interval shrinks per difficulty increase
	SpeedStep = 5 * time.Millisecond

	// DifficultyThreshold is the number of foods eaten per speed increase
	DifficultyThreshold = 5
)

// Food spawn tuning
const (
	// SpawnMaxAttempts bounds the random draws per spawn before falling
	// back to the best candidate seen
	SpawnMaxAttempts = 1000

	// MinFoodHeadDistance is the preferred minimum Manhattan distance
	// between fresh food and the snake's head
	MinFoodHeadDistance = 3
)

// Scoring
const (
	ScorePerFood = 1
)
