package engine

import "github.com/lixenwraith/serpent/core"

// Snake owns the body geometry, heading, and deferred growth state.
//
// The body is an ordered slice with the head at index 0 and a parallel
// membership set kept in sync on every mutation. The two views form one
// abstraction; neither is ever mutated independently.
type Snake struct {
	body     []core.Coord
	occupied map[core.Coord]struct{}

	direction  core.Direction
	pending    core.Direction
	hasPending bool

	growPending bool
}

// NewSnake builds a horizontal snake of the given length with its head at
// head, facing right, body extending leftward.
func NewSnake(head core.Coord, length int) *Snake {
	s := &Snake{
		body:      make([]core.Coord, 0, length),
		occupied:  make(map[core.Coord]struct{}, length),
		direction: core.Right,
	}
	for i := 0; i < length; i++ {
		seg := core.Coord{Row: head.Row, Col: head.Col - i}
		s.body = append(s.body, seg)
		s.occupied[seg] = struct{}{}
	}
	return s
}

// Head returns the current head cell.
func (s *Snake) Head() core.Coord { return s.body[0] }

// Tail returns the current tail cell.
func (s *Snake) Tail() core.Coord { return s.body[len(s.body)-1] }

// Length returns the number of body cells.
func (s *Snake) Length() int { return len(s.body) }

// Body returns the body cells head-first. Callers must not modify the
// returned slice.
func (s *Snake) Body() []core.Coord { return s.body }

// Direction returns the committed heading. A pending request does not show
// here until the next move applies it.
func (s *Snake) Direction() core.Direction { return s.direction }

// Occupies reports whether the snake's body covers the cell.
func (s *Snake) Occupies(c core.Coord) bool {
	_, ok := s.occupied[c]
	return ok
}

// RequestDirection queues d to take effect on the next move and reports
// whether it was accepted. A request that exactly reverses the committed
// heading is ignored. The reversal check deliberately uses the committed
// direction rather than an earlier request from the same tick, so two quick
// key presses cannot fold the snake onto itself. Later valid requests in
// the same tick supersede earlier ones.
func (s *Snake) RequestDirection(d core.Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Grow schedules one cell of growth for the next move. Calling it again
// before that move has no further effect.
func (s *Snake) Grow() { s.growPending = true }

// GrowPending reports whether the next move will lengthen the snake,
// meaning the tail cell will not be vacated.
func (s *Snake) GrowPending() bool { return s.growPending }

// NextHead returns the cell the head will occupy on the next move, with any
// pending direction request applied. It commits nothing; the controller
// uses it for collision checks before the move.
func (s *Snake) NextHead() core.Coord {
	return s.body[0].Step(s.effectiveDirection())
}

func (s *Snake) effectiveDirection() core.Direction {
	if s.hasPending {
		return s.pending
	}
	return s.direction
}

// Move advances the snake one cell and returns the new head. The pending
// request, if any, becomes the committed heading first. Without growth
// pending the tail is removed before the head is added, so the body never
// holds a duplicate and moving into the vacated tail cell stays consistent;
// with growth pending the tail stays and the flag clears.
func (s *Snake) Move() core.Coord {
	s.direction = s.effectiveDirection()
	s.hasPending = false
	head := s.body[0].Step(s.direction)

	if s.growPending {
		s.growPending = false
	} else {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		delete(s.occupied, tail)
	}

	s.body = append(s.body, core.Coord{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	s.occupied[head] = struct{}{}

	return head
}
