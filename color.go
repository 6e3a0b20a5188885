package checkers

// Color is the side a piece belongs to.
type Color uint8

const (
	// White starts on rows 0-2, moves first and moves toward row 7.
	White Color = iota
	// Black starts on rows 5-7 and moves toward row 0.
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColor"
}

// promotionEdge is the far row on which a man of color c is crowned.
func promotionEdge(c Color) Bitboard {
	if c == White {
		return TopEdgeBB
	}
	return BottomEdgeBB
}
