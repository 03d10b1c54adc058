package engine

import (
	"testing"

	"github.com/lixenwraith/serpent/core"
)

func checkSetMatchesBody(t *testing.T, s *Snake) {
	t.Helper()
	if len(s.occupied) != len(s.body) {
		t.Fatalf("membership set has %d entries, body has %d", len(s.occupied), len(s.body))
	}
	for _, seg := range s.body {
		if !s.Occupies(seg) {
			t.Fatalf("body cell %v missing from membership set", seg)
		}
	}
}

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	want := []core.Coord{{Row: 5, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 3}}
	if s.Length() != 3 {
		t.Fatalf("length = %d, want 3", s.Length())
	}
	for i, seg := range s.Body() {
		if seg != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, seg, want[i])
		}
	}
	if s.Head() != want[0] {
		t.Errorf("head = %v, want %v", s.Head(), want[0])
	}
	if s.Direction() != core.Right {
		t.Errorf("direction = %v, want right", s.Direction())
	}
	if !s.Occupies(s.Head()) {
		t.Error("Occupies(head) must be true")
	}
	checkSetMatchesBody(t, s)
}

func TestMoveKeepsLengthWithoutFood(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	directions := []core.Direction{core.Right, core.Down, core.Down, core.Left, core.Up, core.Right}
	for _, d := range directions {
		s.RequestDirection(d)
		s.Move()
		if s.Length() != 3 {
			t.Fatalf("length changed to %d after moving %v", s.Length(), d)
		}
		checkSetMatchesBody(t, s)
	}
}

func TestMoveVacatesTail(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	oldTail := s.Tail()
	s.Move()
	if s.Occupies(oldTail) {
		t.Errorf("vacated tail cell %v still in membership set", oldTail)
	}
	if s.Head() != (core.Coord{Row: 5, Col: 6}) {
		t.Errorf("head = %v, want (5,6)", s.Head())
	}
}

func TestGrowDeferredOneMove(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	s.Grow()
	if s.Length() != 3 {
		t.Fatalf("Grow must not change length immediately, got %d", s.Length())
	}

	s.Move()
	if s.Length() != 4 {
		t.Fatalf("length after growth move = %d, want 4", s.Length())
	}
	checkSetMatchesBody(t, s)

	// The flag cleared; the following move keeps length constant.
	s.Move()
	if s.Length() != 4 {
		t.Errorf("length after post-growth move = %d, want 4", s.Length())
	}
	checkSetMatchesBody(t, s)
}

func TestGrowIdempotentWithinTick(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	s.Grow()
	s.Grow()
	s.Grow()
	s.Move()
	if s.Length() != 4 {
		t.Errorf("repeated Grow before one move must add one cell, got length %d", s.Length())
	}
}

func TestOppositeDirectionRejected(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 7}, 3)

	if s.RequestDirection(core.Left) {
		t.Error("reversing right to left must be rejected")
	}
	s.Move()
	if s.Head() != (core.Coord{Row: 5, Col: 8}) {
		t.Errorf("head = %v, want (5,8): rejected request must not steer", s.Head())
	}
	if s.Direction() != core.Right {
		t.Errorf("direction = %v, want right", s.Direction())
	}
}

func TestReversalCheckUsesCommittedDirection(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	// Up is valid while moving right.
	if !s.RequestDirection(core.Up) {
		t.Fatal("up must be accepted while moving right")
	}
	// Left is still the exact reversal of the committed heading, even
	// though up is pending; accepting it would fold the snake.
	if s.RequestDirection(core.Left) {
		t.Error("left must be rejected while the committed heading is right")
	}

	s.Move()
	if s.Head() != (core.Coord{Row: 4, Col: 5}) {
		t.Errorf("head = %v, want (4,5): pending up should apply", s.Head())
	}
	if s.Direction() != core.Up {
		t.Errorf("direction = %v, want up", s.Direction())
	}

	// After committing up, left is legal again.
	if !s.RequestDirection(core.Left) {
		t.Error("left must be accepted once the committed heading is up")
	}
}

func TestLaterRequestSupersedes(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	s.RequestDirection(core.Up)
	s.RequestDirection(core.Down) // both valid against right; the later one wins
	s.Move()
	if s.Head() != (core.Coord{Row: 6, Col: 5}) {
		t.Errorf("head = %v, want (6,5): the latest valid request wins", s.Head())
	}
}

func TestNextHeadMatchesMove(t *testing.T) {
	s := NewSnake(core.Coord{Row: 5, Col: 5}, 3)

	s.RequestDirection(core.Down)
	predicted := s.NextHead()
	got := s.Move()
	if predicted != got {
		t.Errorf("NextHead predicted %v but Move produced %v", predicted, got)
	}
}

func TestMoveIntoVacatedTailCell(t *testing.T) {
	// 2x2 loop: head top-left, tail bottom-left. Moving down lands on the
	// tail cell exactly as it is vacated.
	s := &Snake{
		body: []core.Coord{
			{Row: 0, Col: 0},
			{Row: 0, Col: 1},
			{Row: 1, Col: 1},
			{Row: 1, Col: 0},
		},
		occupied:  make(map[core.Coord]struct{}),
		direction: core.Down,
	}
	for _, seg := range s.body {
		s.occupied[seg] = struct{}{}
	}

	head := s.Move()
	if head != (core.Coord{Row: 1, Col: 0}) {
		t.Fatalf("head = %v, want (1,0)", head)
	}
	if s.Length() != 4 {
		t.Fatalf("length = %d, want 4", s.Length())
	}
	if !s.Occupies(core.Coord{Row: 1, Col: 0}) {
		t.Error("head cell missing from membership set after landing on vacated tail")
	}
	checkSetMatchesBody(t, s)
}

func TestLengthOneSnakeMoves(t *testing.T) {
	s := NewSnake(core.Coord{Row: 3, Col: 3}, 1)

	head := s.Move()
	if head != (core.Coord{Row: 3, Col: 4}) {
		t.Errorf("head = %v, want (3,4)", head)
	}
	if s.Length() != 1 {
		t.Errorf("length = %d, want 1", s.Length())
	}
	checkSetMatchesBody(t, s)
}
