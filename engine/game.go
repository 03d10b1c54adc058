package engine

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/diag"
	"github.com/lixenwraith/serpent/input"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/render"
	"github.com/lixenwraith/serpent/score"
)

// InputSource is the game's input collaborator. Poll returns an already
// available intent without blocking; Wait blocks until an intent arrives or
// the window elapses. The timed wait is the game's only timing mechanism,
// so Wait must never block past its window.
type InputSource interface {
	Poll() (input.Intent, bool)
	Wait(window time.Duration) (input.Intent, bool)
}

// Sound is the effects collaborator. Implementations must stay callable
// when audio is unavailable.
type Sound interface {
	Eat()
	GameOver()
}

type noSound struct{}

func (noSound) Eat()      {}
func (noSound) GameOver() {}

// Deps are the collaborators injected into the controller. Input and
// Renderer are required; the rest default to inert implementations.
type Deps struct {
	Input    InputSource
	Renderer render.Renderer
	Scores   score.Store
	Sound    Sound
	Log      *slog.Logger
	Rand     *rand.Rand
}

// Game is the tick-driven controller composing the snake, the food, and
// the game state. Everything is owned by the single Run loop; there is no
// parallelism beyond the input source's own event pump.
type Game struct {
	cfg config.Config
	log *slog.Logger
	rng *rand.Rand

	snake *Snake
	food  *Food
	state *State

	input    InputSource
	renderer render.Renderer
	scores   score.Store
	sound    Sound

	// persisted mirrors the value last known to be in the store, so the
	// high score is saved at most once per improvement.
	persisted    int
	newHighScore bool
	quit         bool
}

// New builds a ready-to-run game from the configuration and collaborators.
func New(cfg config.Config, deps Deps) *Game {
	if deps.Scores == nil {
		deps.Scores = &score.MemoryStore{}
	}
	if deps.Sound == nil {
		deps.Sound = noSound{}
	}
	if deps.Log == nil {
		deps.Log = diag.Discard()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:      cfg,
		log:      deps.Log,
		rng:      deps.Rand,
		input:    deps.Input,
		renderer: deps.Renderer,
		scores:   deps.Scores,
		sound:    deps.Sound,
	}
	g.reset()
	return g
}

// reset initializes a fresh round: new snake and food, score cleared,
// interval back to the start value, high score reloaded from the store.
func (g *Game) reset() {
	high := g.scores.Load()
	g.persisted = high
	g.newHighScore = false

	g.state = NewState(g.cfg.InitialTickInterval(), high)
	g.snake = NewSnake(
		core.Coord{Row: parameter.InitialHeadRow, Col: parameter.InitialHeadCol},
		g.cfg.InitialSnakeLength,
	)
	g.food = NewFood(g.rng, g.cfg.MinFoodHeadDistance, g.cfg.SpawnMaxAttempts)

	if _, err := g.food.Spawn(g.cfg.BoardHeight, g.cfg.BoardWidth, g.snake); err != nil {
		// Only possible when the configured board barely holds the snake.
		g.endGame(core.CauseBoardFull)
		return
	}

	g.log.Info("game reset",
		"board_height", g.cfg.BoardHeight,
		"board_width", g.cfg.BoardWidth,
		"high_score", high,
		"tick_ms", g.state.TickInterval.Milliseconds(),
	)
}

// Run drives the tick loop until quit. Each tick: drain buffered input,
// advance the world unless paused or over, render exactly once, then block
// on input up to the current tick interval. The interval is re-read every
// tick since difficulty changes it.
func (g *Game) Run() {
	g.render()
	for {
		for {
			in, ok := g.input.Poll()
			if !ok {
				break
			}
			g.handleIntent(in)
		}
		if g.quit {
			g.teardown()
			return
		}

		if g.state.Phase == PhaseRunning {
			g.advance()
		}
		g.render()

		if in, ok := g.input.Wait(g.state.TickInterval); ok {
			g.handleIntent(in)
		}
		if g.quit {
			g.teardown()
			return
		}
	}
}

// handleIntent applies one input token. Invalid tokens for the current
// phase are ignored silently; they are normal gameplay input.
func (g *Game) handleIntent(in input.Intent) {
	switch in {
	case input.IntentQuit:
		g.log.Info("quit requested")
		g.quit = true

	case input.IntentPause:
		switch g.state.Phase {
		case PhaseRunning:
			g.state.Phase = PhasePaused
			g.log.Info("paused")
		case PhasePaused:
			g.state.Phase = PhaseRunning
			g.log.Info("resumed")
		}

	case input.IntentRestart:
		if g.state.Phase == PhaseGameOver {
			g.log.Info("restart requested")
			g.reset()
		}

	default:
		if g.state.Phase != PhaseRunning {
			return
		}
		if d, ok := in.Direction(); ok {
			if g.snake.RequestDirection(d) {
				g.log.Debug("direction change", "direction", d.String())
			}
		}
	}
}

// advance performs one world step: collision checks against the next head
// position, then the committed move, then food consumption.
func (g *Game) advance() {
	next := g.snake.NextHead()

	if next.Row < 0 || next.Row >= g.cfg.BoardHeight ||
		next.Col < 0 || next.Col >= g.cfg.BoardWidth {
		g.log.Info("wall collision", "row", next.Row, "col", next.Col)
		g.endGame(core.CauseWall)
		return
	}

	// Moving into the tail cell is legal when this move vacates it.
	if g.snake.Occupies(next) && !(next == g.snake.Tail() && !g.snake.GrowPending()) {
		g.log.Info("self collision", "row", next.Row, "col", next.Col)
		g.endGame(core.CauseSelf)
		return
	}

	head := g.snake.Move()

	if pos, ok := g.food.Position(); ok && head == pos {
		g.consumeFood(head)
	}
}

// consumeFood applies scoring, schedules growth for the next move, and
// respawns the food. Growth lands one tick later so this tick still renders
// the pre-growth length.
func (g *Game) consumeFood(head core.Coord) {
	spedUp := g.state.RecordFood(
		g.cfg.ScorePerFood,
		g.cfg.DifficultyThreshold,
		g.cfg.SpeedStep(),
		g.cfg.MinTickInterval(),
	)
	g.snake.Grow()
	g.sound.Eat()

	g.log.Info("food eaten",
		"score", g.state.Score,
		"length", g.snake.Length(),
		"row", head.Row,
		"col", head.Col,
	)
	if spedUp {
		g.log.Info("difficulty increased", "tick_ms", g.state.TickInterval.Milliseconds())
	}

	pos, err := g.food.Spawn(g.cfg.BoardHeight, g.cfg.BoardWidth, g.snake)
	if err != nil {
		if errors.Is(err, ErrBoardFull) {
			g.log.Info("board full")
			g.endGame(core.CauseBoardFull)
		}
		return
	}
	g.log.Debug("food spawned", "row", pos.Row, "col", pos.Col)
}

// endGame transitions to PhaseGameOver and persists a new high score. A
// failing store is logged and otherwise ignored; the game keeps the value
// in memory.
func (g *Game) endGame(cause core.Cause) {
	g.state.Phase = PhaseGameOver
	g.state.Cause = cause

	if g.state.Score > g.state.HighScore {
		g.state.HighScore = g.state.Score
		g.newHighScore = true
	}
	g.persistHighScore()

	g.sound.GameOver()
	g.log.Info("game over",
		"cause", cause.String(),
		"score", g.state.Score,
		"high_score", g.state.HighScore,
	)
}

// persistHighScore writes the in-memory high score when it beats the
// stored one.
func (g *Game) persistHighScore() {
	if g.state.HighScore <= g.persisted {
		return
	}
	if err := g.scores.Save(g.state.HighScore); err != nil {
		g.log.Warn("high score save failed", "error", err.Error())
		return
	}
	g.persisted = g.state.HighScore
	g.log.Info("high score saved", "score", g.state.HighScore)
}

// teardown flushes persistence on the quit path. A record run ended by
// quitting mid-game still counts.
func (g *Game) teardown() {
	if g.state.Score > g.state.HighScore {
		g.state.HighScore = g.state.Score
	}
	g.persistHighScore()
	g.log.Info("game ended", "score", g.state.Score)
}

func (g *Game) render() {
	g.renderer.Render(g.frame())
}

// frame snapshots the visible state for the renderer.
func (g *Game) frame() render.Frame {
	body := make([]core.Coord, g.snake.Length())
	copy(body, g.snake.Body())

	f := render.Frame{
		Height:       g.cfg.BoardHeight,
		Width:        g.cfg.BoardWidth,
		Body:         body,
		Score:        g.state.Score,
		HighScore:    g.state.HighScore,
		Interval:     g.state.TickInterval,
		Paused:       g.state.Phase == PhasePaused,
		GameOver:     g.state.Phase == PhaseGameOver,
		Cause:        g.state.Cause,
		NewHighScore: g.newHighScore,
	}
	if pos, ok := g.food.Position(); ok {
		f.Food = pos
		f.HasFood = true
	}
	return f
}
