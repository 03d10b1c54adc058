package core

// Cause identifies why a game ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf

	// CauseBoardFull means the snake fills every interior cell and no food
	// can spawn. Terminal like the collisions, but presented as a win.
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	}
	return "unknown"
}
