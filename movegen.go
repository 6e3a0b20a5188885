package checkers

// Square chart (PDN numbers in brackets), White at the bottom:
//
//	      57[32]  59[31]  61[30]  63[29]
//	  48[28]  50[27]  52[26]  54[25]
//	      41[24]  43[23]  45[22]  47[21]
//	  32[20]  34[19]  36[18]  38[17]
//	      25[16]  27[15]  29[14]  31[13]
//	  16[12]  18[11]  20[10]  22[9]
//	       9[8]   11[7]   13[6]   15[5]
//	   0[4]    2[3]    4[2]    6[1]
//
// Up left = +7, up right = +9, down left = -9, down right = -7; a jump doubles the offset.

// direction pairs a diagonal shift with the edges it would wrap across.
type direction struct {
	offset int
	edge   Bitboard // excluded before a single step
	jump   Bitboard // excluded before a two-step jump
}

var (
	upLeft    = direction{offset: 7, edge: LeftEdgeBB | TopEdgeBB, jump: LeftTwoBB | TopTwoBB}
	upRight   = direction{offset: 9, edge: RightEdgeBB | TopEdgeBB, jump: RightTwoBB | TopTwoBB}
	downLeft  = direction{offset: -9, edge: LeftEdgeBB | BottomEdgeBB, jump: LeftTwoBB | BottomTwoBB}
	downRight = direction{offset: -7, edge: RightEdgeBB | BottomEdgeBB, jump: RightTwoBB | BottomTwoBB}

	forward = [2][]direction{
		White: {upLeft, upRight},
		Black: {downLeft, downRight},
	}
	allDirections = []direction{upLeft, upRight, downLeft, downRight}
)

// directions returns the diagonals a piece of color c may travel.
func directions(c Color, king bool) []direction {
	if king {
		return allDirections
	}
	return forward[c]
}

// step moves every square of src one diagonal step in d.
func (d direction) step(src Bitboard) Bitboard { return src.Shift(d.offset, d.edge) }

// PieceMoves returns the empty squares reachable by a single diagonal step from any square of src.
func PieceMoves(b *Board, c Color, king bool, src Bitboard) Bitboard {
	empty := b.Empty()
	moves := EmptyBB
	for _, d := range directions(c, king) {
		moves = moves.Union(d.step(src).Intersect(empty))
	}
	return moves
}

// PieceCaptures returns the landing squares of every jump available from src. The jumped
// square is not reported; recover it with Midsquare once a start and end are chosen.
func PieceCaptures(b *Board, c Color, king bool, src Bitboard) Bitboard {
	opponents := b.Opponents(c)
	empty := b.Empty()
	captures := EmptyBB
	for _, d := range directions(c, king) {
		over := src.Shift(d.offset, d.jump).Intersect(opponents)
		captures = captures.Union(over.Shift(d.offset, EmptyBB).Intersect(empty))
	}
	return captures
}

// ColorMoves returns every single-step destination available to color c.
func ColorMoves(b *Board, c Color) Bitboard {
	return PieceMoves(b, c, false, b.Men(c)).Union(PieceMoves(b, c, true, b.Kings(c)))
}

// ColorCaptures returns every jump landing square available to color c. It is non-empty
// exactly when c is obliged to capture.
func ColorCaptures(b *Board, c Color) Bitboard {
	return PieceCaptures(b, c, false, b.Men(c)).Union(PieceCaptures(b, c, true, b.Kings(c)))
}
