package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// Terminal renders frames onto a tcell screen. The bordered board sits at
// the top-left of the terminal with the status chrome on the border rows.
type Terminal struct {
	screen tcell.Screen

	borderStyle tcell.Style
	headStyle   tcell.Style
	bodyStyle   tcell.Style
	foodStyle   tcell.Style
	textStyle   tcell.Style
	bannerStyle tcell.Style
}

// NewTerminal creates a renderer for the given screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:      screen,
		borderStyle: tcell.StyleDefault,
		headStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		bodyStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		foodStyle:   tcell.StyleDefault.Foreground(tcell.ColorRed),
		textStyle:   tcell.StyleDefault,
		bannerStyle: tcell.StyleDefault.Bold(true),
	}
}

// Render draws the full board state and flushes it to the terminal.
func (t *Terminal) Render(f Frame) {
	t.screen.Clear()

	t.drawBorder(f)
	t.drawChrome(f)

	if f.GameOver {
		t.drawGameOver(f)
		t.screen.Show()
		return
	}

	if f.HasFood {
		t.setCell(f.Food.Row, f.Food.Col, parameter.FoodGlyph, t.foodStyle)
	}
	for i, seg := range f.Body {
		if i == 0 {
			t.setCell(seg.Row, seg.Col, parameter.HeadGlyph, t.headStyle)
		} else {
			t.setCell(seg.Row, seg.Col, parameter.BodyGlyph, t.bodyStyle)
		}
	}

	if f.Paused {
		t.drawCentered(f, f.Height/2, "PAUSED", t.bannerStyle)
	}

	t.screen.Show()
}

// setCell draws into the interior; the +1 offsets skip the border.
func (t *Terminal) setCell(row, col int, r rune, style tcell.Style) {
	t.screen.SetContent(col+1, row+1, r, nil, style)
}

func (t *Terminal) drawBorder(f Frame) {
	right := f.Width + 1
	bottom := f.Height + 1

	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, tcell.RuneHLine, nil, t.borderStyle)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, t.borderStyle)
	}
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, tcell.RuneVLine, nil, t.borderStyle)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, t.borderStyle)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, t.borderStyle)
	t.screen.SetContent(right, 0, tcell.RuneURCorner, nil, t.borderStyle)
	t.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, t.borderStyle)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, t.borderStyle)
}

// drawChrome writes score, high score, and speed onto the border rows.
func (t *Terminal) drawChrome(f Frame) {
	scoreText := fmt.Sprintf(" Score: %d ", f.Score)
	if len(scoreText) > f.Width-2 {
		scoreText = fmt.Sprintf(" S:%d ", f.Score)
	}
	t.drawText(2, 0, scoreText, t.textStyle)

	highText := fmt.Sprintf(" High: %d ", f.HighScore)
	t.drawText(f.Width-len(highText), 0, highText, t.textStyle)

	speedText := fmt.Sprintf(" Speed: %dms ", f.Interval.Milliseconds())
	t.drawText(2, f.Height+1, speedText, t.textStyle)

	helpText := " p:pause q:quit "
	if len(speedText)+len(helpText)+4 <= f.Width {
		t.drawText(f.Width-len(helpText), f.Height+1, helpText, t.textStyle)
	}
}

type bannerLine struct {
	text string
	bold bool
}

func (t *Terminal) drawGameOver(f Frame) {
	title := "GAME OVER!"
	if f.Cause == core.CauseBoardFull {
		title = "YOU WIN!"
	}

	lines := []bannerLine{
		{title, true},
		{"", false},
		{fmt.Sprintf("Final Score: %d", f.Score), false},
		{fmt.Sprintf("High Score: %d", f.HighScore), false},
		{"", false},
	}
	if f.NewHighScore {
		lines = append(lines, bannerLine{"NEW HIGH SCORE!", true}, bannerLine{"", false})
	}
	lines = append(lines,
		bannerLine{"Press 'R' to Restart", false},
		bannerLine{"Press 'Q' to Quit", false},
	)

	startRow := (f.Height - len(lines)) / 2
	for i, line := range lines {
		if line.text == "" {
			continue
		}
		style := t.textStyle
		if line.bold {
			style = t.bannerStyle
		}
		t.drawCentered(f, startRow+i, line.text, style)
	}
}

// drawCentered writes text centered horizontally on an interior row.
func (t *Terminal) drawCentered(f Frame, row int, text string, style tcell.Style) {
	col := (f.Width - len(text)) / 2
	for i, r := range text {
		t.setCell(row, col+i, r, style)
	}
}

// drawText writes text in screen coordinates (border space included).
func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
