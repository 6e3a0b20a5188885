package checkers

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// A Board represents a checkers position as four mutually exclusive square sets.
type Board struct {
	bbWhiteMen   Bitboard
	bbBlackMen   Bitboard
	bbWhiteKings Bitboard
	bbBlackKings Bitboard
}

// NewBoard returns a board in the standard starting position: twelve men per side on the
// three back-most playable rows and no kings.
func NewBoard() *Board {
	return &Board{
		bbWhiteMen: 0x55AA55,
		bbBlackMen: 0xAA55AA << 40,
	}
}

// BoardFromSquareMap returns a board initialized from a square-to-piece mapping.
// Invalid squares and NoPiece entries are skipped.
func BoardFromSquareMap(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		sqBB := SquareBB(sq)
		if sqBB == EmptyBB || p == NoPiece {
			continue
		}
		c, king := p.Color(), p.IsKing()
		b.setBBFor(c, king, b.bbFor(c, king).Union(sqBB))
	}
	return b
}

// SquareMap returns a mapping of occupied squares to pieces.
func (b *Board) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for _, sq := range b.Occupied().Scan() {
		m[sq] = b.Piece(sq)
	}
	return m
}

// Men returns the squares holding uncrowned pieces of color c.
func (b *Board) Men(c Color) Bitboard { return b.bbFor(c, false) }

// Kings returns the squares holding kings of color c.
func (b *Board) Kings(c Color) Bitboard { return b.bbFor(c, true) }

// Pieces returns every square held by color c.
func (b *Board) Pieces(c Color) Bitboard { return b.Men(c).Union(b.Kings(c)) }

// Opponents returns every square held by the opponent of color c.
func (b *Board) Opponents(c Color) Bitboard { return b.Pieces(c.Other()) }

// Occupied returns every square holding a piece.
func (b *Board) Occupied() Bitboard {
	return b.bbWhiteMen.Union(b.bbBlackMen).Union(b.bbWhiteKings).Union(b.bbBlackKings)
}

// Empty returns the complement of the occupied squares, non-playable squares included.
func (b *Board) Empty() Bitboard { return b.Occupied().Complement() }

// Piece returns the piece located on the given square, or NoPiece.
func (b *Board) Piece(sq Square) Piece {
	sqBB := SquareBB(sq)
	switch {
	case b.bbWhiteMen.Intersect(sqBB).IsNotEmpty():
		return WhiteMan
	case b.bbBlackMen.Intersect(sqBB).IsNotEmpty():
		return BlackMan
	case b.bbWhiteKings.Intersect(sqBB).IsNotEmpty():
		return WhiteKing
	case b.bbBlackKings.Intersect(sqBB).IsNotEmpty():
		return BlackKing
	}
	return NoPiece
}

// MakeMove attempts to move the piece of color c on start to end. Both arguments must be
// single squares. The result names the color to move next: c again when the move was a
// capture and the landed piece can capture once more, in which case the caller continues
// the sequence from end. An Invalid result leaves the board untouched.
func (b *Board) MakeMove(c Color, start, end Bitboard) MoveResult {
	if !start.IsSingleSquare() || !end.IsSingleSquare() {
		return Invalid
	}
	if start.Intersect(b.Pieces(c)).IsNotEmpty() && start.Intersect(b.Opponents(c)).IsNotEmpty() {
		panic(fmt.Sprintf("checkers: square %s held by both colors", start.Scan()[0]))
	}

	king := start.Intersect(b.Kings(c)).IsNotEmpty()
	if !king && start.Intersect(b.Men(c)).IsEmpty() {
		return Invalid
	}

	moveBB := PieceMoves(b, c, king, start).Intersect(end)
	captureBB := PieceCaptures(b, c, king, start).Intersect(end)
	mustCapture := ColorCaptures(b, c).IsNotEmpty()
	if captureBB.IsEmpty() && (moveBB.IsEmpty() || mustCapture) {
		return Invalid
	}

	capture := captureBB.IsNotEmpty()
	if capture {
		jumped := Midsquare(start, end)
		opp := c.Other()
		oppKing := jumped.Intersect(b.Kings(opp)).IsNotEmpty()
		b.setBBFor(opp, oppKing, b.bbFor(opp, oppKing).AndNot(jumped))
	}

	b.setBBFor(c, king, b.bbFor(c, king).AndNot(start))
	landsKing := king || end.Intersect(promotionEdge(c)).IsNotEmpty()
	b.setBBFor(c, landsKing, b.bbFor(c, landsKing).Union(end))

	if capture && PieceCaptures(b, c, landsKing, end).IsNotEmpty() {
		return Valid(c)
	}
	return Valid(c.Other())
}

// Squares serializes the board in row-major order for renderers.
// It panics if a square is claimed by more than one set.
func (b *Board) Squares() [NumOfSquaresInBoard]Piece {
	var out [NumOfSquaresInBoard]Piece
	sets := [...]struct {
		bb Bitboard
		p  Piece
	}{
		{b.bbWhiteMen, WhiteMan},
		{b.bbBlackMen, BlackMan},
		{b.bbWhiteKings, WhiteKing},
		{b.bbBlackKings, BlackKing},
	}
	for _, s := range sets {
		for _, sq := range s.bb.Scan() {
			if out[sq] != NoPiece {
				panic(fmt.Sprintf("checkers: square %s claimed by %s and %s", sq, out[sq], s.p))
			}
			out[sq] = s.p
		}
	}
	return out
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// Mirror returns the position rotated by 180 degrees with the colors swapped, so that the
// side to move sees the same position from the other side of the board.
func (b *Board) Mirror() *Board {
	return &Board{
		bbWhiteMen:   b.bbBlackMen.Reverse(),
		bbBlackMen:   b.bbWhiteMen.Reverse(),
		bbWhiteKings: b.bbBlackKings.Reverse(),
		bbBlackKings: b.bbWhiteKings.Reverse(),
	}
}

// Validate checks that the four sets are mutually exclusive, that every piece stands on a
// playable square and that no man rests on its own promotion row. All violations are reported.
func (b *Board) Validate() error {
	var result *multierror.Error

	sets := []struct {
		name string
		bb   Bitboard
	}{
		{"white men", b.bbWhiteMen},
		{"black men", b.bbBlackMen},
		{"white kings", b.bbWhiteKings},
		{"black kings", b.bbBlackKings},
	}
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			if both := sets[i].bb.Intersect(sets[j].bb); both.IsNotEmpty() {
				result = multierror.Append(result, fmt.Errorf("%s and %s share squares %v", sets[i].name, sets[j].name, both.Scan()))
			}
		}
		if off := sets[i].bb.AndNot(PlayableSquaresBB); off.IsNotEmpty() {
			result = multierror.Append(result, fmt.Errorf("%s on non-playable squares %v", sets[i].name, off.Scan()))
		}
	}
	for _, c := range []Color{White, Black} {
		if stuck := b.Men(c).Intersect(promotionEdge(c)); stuck.IsNotEmpty() {
			result = multierror.Append(result, fmt.Errorf("%s men left uncrowned on %v", c, stuck.Scan()))
		}
	}
	return result.ErrorOrNil()
}

// --- Debugging ---

// String returns the board as eight lines of piece symbols, row 7 first.
func (b *Board) String() string {
	squares := b.Squares()
	var sb strings.Builder
	for r := NumOfRows - 1; r >= 0; r-- {
		for c := 0; c < NumOfCols; c++ {
			sb.WriteString(squares[NewSquare(r, c)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw returns a visual representation of the board with PDN numbers on empty playable
// squares, useful for debugging.
func (b *Board) Draw() string {
	squares := b.Squares()
	var sb strings.Builder
	sb.WriteString("\n")
	for r := NumOfRows - 1; r >= 0; r-- {
		for c := 0; c < NumOfCols; c++ {
			sq := NewSquare(r, c)
			switch {
			case squares[sq] != NoPiece:
				sb.WriteString(" " + squares[sq].String() + " ")
			case sq.IsPlayable():
				fmt.Fprintf(&sb, "%2d ", sq.PDN())
			default:
				sb.WriteString(" . ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper methods for getting/setting specific bitboards ---

// bbFor returns the set holding pieces of the given color and rank.
func (b *Board) bbFor(c Color, king bool) Bitboard {
	switch {
	case c == White && !king:
		return b.bbWhiteMen
	case c == Black && !king:
		return b.bbBlackMen
	case c == White:
		return b.bbWhiteKings
	default:
		return b.bbBlackKings
	}
}

// setBBFor replaces the set holding pieces of the given color and rank.
func (b *Board) setBBFor(c Color, king bool, bb Bitboard) {
	switch {
	case c == White && !king:
		b.bbWhiteMen = bb
	case c == Black && !king:
		b.bbBlackMen = bb
	case c == White:
		b.bbWhiteKings = bb
	default:
		b.bbBlackKings = bb
	}
}
