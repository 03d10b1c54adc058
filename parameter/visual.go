package parameter

// Board glyphs
const (
	HeadGlyph = '@'
	BodyGlyph = '#'
	FoodGlyph = '*'
)
