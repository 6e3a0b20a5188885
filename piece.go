package checkers

// Piece is the content of a square as seen by renderers.
type Piece uint8

const (
	NoPiece Piece = iota
	WhiteMan
	BlackMan
	WhiteKing
	BlackKing
)

// NewPiece returns the piece of the given color and rank.
func NewPiece(c Color, king bool) Piece {
	switch {
	case c == White && !king:
		return WhiteMan
	case c == Black && !king:
		return BlackMan
	case c == White:
		return WhiteKing
	default:
		return BlackKing
	}
}

// Color returns the owner of the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p == BlackMan || p == BlackKing {
		return Black
	}
	return White
}

// IsKing reports whether the piece has been crowned.
func (p Piece) IsKing() bool { return p == WhiteKing || p == BlackKing }

// String returns the symbol used to draw the piece; NoPiece is a blank.
func (p Piece) String() string {
	switch p {
	case WhiteMan:
		return "○"
	case BlackMan:
		return "●"
	case WhiteKing:
		return "☆"
	case BlackKing:
		return "★"
	}
	return " "
}
