package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	contents, w, _ := screen.GetContents()
	return contents[y*w+x].Runes[0]
}

func TestRenderBoard(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	r := NewTerminal(screen)
	r.Render(Frame{
		Height: 10,
		Width:  20,
		Body: []core.Coord{
			{Row: 5, Col: 7},
			{Row: 5, Col: 6},
			{Row: 5, Col: 5},
		},
		Food:     core.Coord{Row: 2, Col: 3},
		HasFood:  true,
		Score:    4,
		Interval: 150 * time.Millisecond,
	})

	// Interior (row, col) maps to screen (col+1, row+1).
	if got := cellRune(t, screen, 8, 6); got != parameter.HeadGlyph {
		t.Errorf("head cell = %q, want %q", got, parameter.HeadGlyph)
	}
	if got := cellRune(t, screen, 7, 6); got != parameter.BodyGlyph {
		t.Errorf("body cell = %q, want %q", got, parameter.BodyGlyph)
	}
	if got := cellRune(t, screen, 6, 6); got != parameter.BodyGlyph {
		t.Errorf("body cell = %q, want %q", got, parameter.BodyGlyph)
	}
	if got := cellRune(t, screen, 4, 3); got != parameter.FoodGlyph {
		t.Errorf("food cell = %q, want %q", got, parameter.FoodGlyph)
	}

	// Border corners.
	if got := cellRune(t, screen, 0, 0); got != tcell.RuneULCorner {
		t.Errorf("top-left corner = %q", got)
	}
	if got := cellRune(t, screen, 21, 11); got != tcell.RuneLRCorner {
		t.Errorf("bottom-right corner = %q", got)
	}
}

func screenText(t *testing.T, screen tcell.SimulationScreen) string {
	t.Helper()
	contents, w, h := screen.GetContents()
	out := make([]rune, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, contents[y*w+x].Runes[0])
		}
		out = append(out, '\n')
	}
	return string(out)
}

func TestRenderChrome(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	r := NewTerminal(screen)
	r.Render(Frame{
		Height:    10,
		Width:     30,
		Body:      []core.Coord{{Row: 1, Col: 1}},
		Score:     12,
		HighScore: 40,
		Interval:  95 * time.Millisecond,
	})

	text := screenText(t, screen)
	for _, want := range []string{"Score: 12", "High: 40", "Speed: 95ms"} {
		if !strings.Contains(text, want) {
			t.Errorf("chrome missing %q\n%s", want, text)
		}
	}
}

func TestRenderPausedBanner(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	r := NewTerminal(screen)
	r.Render(Frame{
		Height: 10,
		Width:  30,
		Body:   []core.Coord{{Row: 1, Col: 1}},
		Paused: true,
	})

	if !strings.Contains(screenText(t, screen), "PAUSED") {
		t.Error("paused frame must show the PAUSED banner")
	}
}

func TestRenderGameOver(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	r := NewTerminal(screen)
	r.Render(Frame{
		Height:       10,
		Width:        30,
		Body:         []core.Coord{{Row: 1, Col: 1}},
		Score:        18,
		HighScore:    18,
		GameOver:     true,
		Cause:        core.CauseWall,
		NewHighScore: true,
	})

	text := screenText(t, screen)
	for _, want := range []string{"GAME OVER!", "Final Score: 18", "NEW HIGH SCORE!", "Press 'R' to Restart"} {
		if !strings.Contains(text, want) {
			t.Errorf("game-over screen missing %q\n%s", want, text)
		}
	}
}

func TestRenderBoardFullShowsWin(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	r := NewTerminal(screen)
	r.Render(Frame{
		Height:   10,
		Width:    30,
		Body:     []core.Coord{{Row: 1, Col: 1}},
		GameOver: true,
		Cause:    core.CauseBoardFull,
	})

	text := screenText(t, screen)
	if !strings.Contains(text, "YOU WIN!") {
		t.Error("board-full end must present as a win")
	}
	if strings.Contains(text, "GAME OVER!") {
		t.Error("board-full end must not show the game-over title")
	}
}

