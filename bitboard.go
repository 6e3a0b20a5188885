package checkers

import (
	"math/bits"
	"strings"
)

// Bitboard represents a set of board squares packed into a 64-bit integer.
// Bit i is set when square i is a member of the set.
type Bitboard uint64

// --- Constants ---

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfRows           = 8  // Number of rows, counted from White's back row.
	NumOfCols           = 8  // Number of columns, counted from White's left.
)

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Dark squares. Row 0 starts on a dark square, so a square is playable when row+col is even.
	PlayableSquaresBB Bitboard = 0xAA55AA55AA55AA55

	// Single edges
	LeftEdgeBB   Bitboard = 0x0101010101010101
	RightEdgeBB  Bitboard = LeftEdgeBB << 7
	BottomEdgeBB Bitboard = 0xFF
	TopEdgeBB    Bitboard = BottomEdgeBB << 56

	// Edges doubled inward by one column/row. A jump crosses two squares, so its source must be
	// clear of both the edge and the line next to it.
	LeftTwoBB   Bitboard = LeftEdgeBB | LeftEdgeBB<<1
	RightTwoBB  Bitboard = RightEdgeBB | RightEdgeBB>>1
	BottomTwoBB Bitboard = BottomEdgeBB | BottomEdgeBB<<8
	TopTwoBB    Bitboard = TopEdgeBB | TopEdgeBB>>8
)

// --- Bitboard Manipulation ---

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	if sq >= 0 && sq < NumOfSquaresInBoard {
		return 1 << uint(sq)
	}
	return EmptyBB
}

// Set sets the bit corresponding to the square.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Occupied checks if the square is a member of the set.
func (b Bitboard) Occupied(sq Square) bool {
	return (b & SquareBB(sq)) != 0
}

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// IsNotEmpty checks if the bitboard has at least one square.
func (b Bitboard) IsNotEmpty() bool { return b != 0 }

// IsSingleSquare reports whether exactly one bit is set.
func (b Bitboard) IsSingleSquare() bool { return b != 0 && b&(b-1) == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB finds the index of the least significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// PopLSB finds and removes the least significant bit. Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	if b == 0 {
		return NoSquare, b, false
	}
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1), true
}

// Scan returns the squares of the set in ascending order.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for tempBB := b; tempBB != EmptyBB; {
		sq, next, _ := tempBB.PopLSB()
		squares = append(squares, sq)
		tempBB = next
	}
	return squares
}

// Union returns the squares in either set.
func (b Bitboard) Union(other Bitboard) Bitboard { return b | other }

// Intersect returns the squares in both sets.
func (b Bitboard) Intersect(other Bitboard) Bitboard { return b & other }

// Xor returns the squares in exactly one of the sets.
func (b Bitboard) Xor(other Bitboard) Bitboard { return b ^ other }

// Complement returns every square not in the set, including non-playable squares.
func (b Bitboard) Complement() Bitboard { return ^b }

// AndNot returns the squares of b that are not in other.
func (b Bitboard) AndNot(other Bitboard) Bitboard { return b &^ other }

// Shift removes the squares in exclude and then shifts the remainder by offset bits:
// left for positive offsets, right for negative ones. Callers pass the edge that the
// shift would wrap across as exclude.
func (b Bitboard) Shift(offset int, exclude Bitboard) Bitboard {
	masked := b &^ exclude
	if offset >= 0 {
		return masked << uint(offset)
	}
	return masked >> uint(-offset)
}

// Reverse mirrors the bit order, which rotates the board by 180 degrees.
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// Midsquare returns the square halfway between two single squares that lie on the same
// diagonal two steps apart, i.e. the square jumped over by a capture. Any other input
// yields EmptyBB.
func Midsquare(a, b Bitboard) Bitboard {
	if !a.IsSingleSquare() || !b.IsSingleSquare() {
		return EmptyBB
	}
	i := bits.TrailingZeros64(uint64(a))
	j := bits.TrailingZeros64(uint64(b))
	if d := abs(i - j); d != 14 && d != 18 {
		return EmptyBB
	}
	if abs(i%NumOfCols-j%NumOfCols) != 2 {
		return EmptyBB // wraps around a side edge
	}

	// a*b == 1 << (i+j), so half the product's exponent is the midpoint index.
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	exp := bits.TrailingZeros64(lo)
	if lo == 0 {
		exp = 64 + bits.TrailingZeros64(hi)
	}
	return Bitboard(1) << uint(exp>>1)
}

// --- Debugging ---

// String returns the set as 64 binary digits, square 63 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if (uint64(b)>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw returns an 8x8 picture of the set with row 7 on top, useful for debugging.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for r := NumOfRows - 1; r >= 0; r-- {
		for c := 0; c < NumOfCols; c++ {
			if b.Occupied(NewSquare(r, c)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper Functions ---

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
