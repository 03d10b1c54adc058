package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/serpent/parameter"
)

// Config carries every tunable the game accepts at startup. Durations are
// expressed in milliseconds so the TOML file stays plain integers.
type Config struct {
	BoardHeight int `toml:"board_height"`
	BoardWidth  int `toml:"board_width"`

	InitialTickMs int `toml:"initial_tick_ms"`
	MinTickMs     int `toml:"min_tick_ms"`
	SpeedStepMs   int `toml:"speed_step_ms"`

	DifficultyThreshold int `toml:"difficulty_threshold"`

	MinFoodHeadDistance int `toml:"min_food_head_distance"`
	SpawnMaxAttempts    int `toml:"spawn_max_attempts"`

	ScorePerFood       int `toml:"score_per_food"`
	InitialSnakeLength int `toml:"initial_snake_length"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BoardHeight:         parameter.BoardHeight,
		BoardWidth:          parameter.BoardWidth,
		InitialTickMs:       int(parameter.InitialTickInterval / time.Millisecond),
		MinTickMs:           int(parameter.MinTickInterval / time.Millisecond),
		SpeedStepMs:         int(parameter.SpeedStep / time.Millisecond),
		DifficultyThreshold: parameter.DifficultyThreshold,
		MinFoodHeadDistance: parameter.MinFoodHeadDistance,
		SpawnMaxAttempts:    parameter.SpawnMaxAttempts,
		ScorePerFood:        parameter.ScorePerFood,
		InitialSnakeLength:  parameter.InitialSnakeLength,
	}
}

// InitialTickInterval returns the starting input wait per tick.
func (c Config) InitialTickInterval() time.Duration {
	return time.Duration(c.InitialTickMs) * time.Millisecond
}

// MinTickInterval returns the interval floor.
func (c Config) MinTickInterval() time.Duration {
	return time.Duration(c.MinTickMs) * time.Millisecond
}

// SpeedStep returns the per-speedup interval reduction.
func (c Config) SpeedStep() time.Duration {
	return time.Duration(c.SpeedStepMs) * time.Millisecond
}

// Load returns the defaults overridden by the TOML file at path. A missing
// file is not an error; an unrecognized key or an invalid value is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unrecognized key %q", path, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot start with.
func (c Config) Validate() error {
	if c.BoardHeight < 4 || c.BoardWidth < 4 {
		return fmt.Errorf("board %dx%d is too small to play on", c.BoardHeight, c.BoardWidth)
	}
	if parameter.InitialHeadRow >= c.BoardHeight || parameter.InitialHeadCol >= c.BoardWidth {
		return fmt.Errorf("board %dx%d cannot hold the starting snake", c.BoardHeight, c.BoardWidth)
	}
	if c.InitialSnakeLength < 1 || c.InitialSnakeLength > parameter.InitialHeadCol+1 {
		return fmt.Errorf("initial snake length %d does not fit at the starting position", c.InitialSnakeLength)
	}
	if c.InitialTickMs <= 0 || c.MinTickMs <= 0 {
		return fmt.Errorf("tick intervals must be positive")
	}
	if c.MinTickMs > c.InitialTickMs {
		return fmt.Errorf("min tick %dms exceeds initial tick %dms", c.MinTickMs, c.InitialTickMs)
	}
	if c.SpeedStepMs < 0 {
		return fmt.Errorf("speed step must not be negative")
	}
	if c.DifficultyThreshold < 1 {
		return fmt.Errorf("difficulty threshold must be at least 1")
	}
	if c.SpawnMaxAttempts < 1 {
		return fmt.Errorf("spawn attempt budget must be at least 1")
	}
	if c.MinFoodHeadDistance < 0 {
		return fmt.Errorf("food distance must not be negative")
	}
	if c.ScorePerFood < 1 {
		return fmt.Errorf("score per food must be at least 1")
	}
	return nil
}

// FitsTerminal reports whether a terminal of the given cell size can show
// the bordered board plus the status chrome. Failing this is a fatal setup
// error, not a gameplay condition.
func (c Config) FitsTerminal(width, height int) error {
	// Bordered window plus a two-cell margin, matching the stock board's
	// 42x22 minimum.
	needW := c.BoardWidth + 4
	needH := c.BoardHeight + 4
	if width < needW || height < needH {
		return fmt.Errorf("terminal too small: need at least %dx%d, got %dx%d", needW, needH, width, height)
	}
	return nil
}

// DefaultPath is where Load looks when the user supplies no path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".serpent", "serpent.toml")
}
