package render

import (
	"time"

	"github.com/lixenwraith/serpent/core"
)

// Frame is an immutable snapshot of one tick's visible state. The engine
// builds one per tick and hands it to the renderer; the renderer never
// reaches back into live game state.
type Frame struct {
	// Interior dimensions in cells.
	Height, Width int

	// Body holds the snake head-first. The head is drawn distinctly.
	Body []core.Coord

	Food    core.Coord
	HasFood bool

	Score     int
	HighScore int
	Interval  time.Duration

	Paused       bool
	GameOver     bool
	Cause        core.Cause
	NewHighScore bool
}

// Renderer draws a complete frame. Called exactly once per tick.
type Renderer interface {
	Render(Frame)
}
