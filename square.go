package checkers

// Square represents a board position (0-63), row-major from White's back row.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// NewSquare returns the square at the given row and column. Out of range coordinates yield NoSquare.
func NewSquare(row, col int) Square {
	if row < 0 || row >= NumOfRows || col < 0 || col >= NumOfCols {
		return NoSquare
	}
	return Square(row*NumOfCols + col)
}

// Row returns the row of the square, 0 being White's back row.
func (sq Square) Row() int { return int(sq) / NumOfCols }

// Col returns the column of the square, 0 being White's left.
func (sq Square) Col() int { return int(sq) % NumOfCols }

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool { return sq >= 0 && sq < NumOfSquaresInBoard }

// IsPlayable reports whether the square is one of the 32 dark squares.
func (sq Square) IsPlayable() bool { return PlayableSquaresBB.Occupied(sq) }

// BB returns the single-square set for sq.
func (sq Square) BB() Bitboard { return SquareBB(sq) }
