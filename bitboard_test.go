package checkers

import "testing"

type bitboardTestPair struct {
	initial  uint64
	reversed uint64
}

var (
	tests = []bitboardTestPair{
		{
			uint64(1),
			uint64(9223372036854775808),
		},
		{
			uint64(18446744073709551615),
			uint64(18446744073709551615),
		},
		{
			uint64(0),
			uint64(0),
		},
	}
)

func TestBitboardReverse(t *testing.T) {
	for _, p := range tests {
		r := uint64(Bitboard(p.initial).Reverse())
		if r != p.reversed {
			t.Fatalf("bitboard reverse of %s expected %s but got %s", intStr(p.initial), intStr(p.reversed), intStr(r))
		}
	}
	if PlayableSquaresBB.Reverse() != PlayableSquaresBB {
		t.Fatalf("rotating the board should keep the playable squares")
	}
}

func TestBitboardOccupied(t *testing.T) {
	bb := EmptyBB.Set(18)

	if bb.Occupied(18) != true {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, true, false)
	}

	if bb.Occupied(27) != false {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, false, true)
	}
}

func TestBitboardSingleSquare(t *testing.T) {
	if EmptyBB.IsSingleSquare() {
		t.Fatalf("empty set is not a single square")
	}
	if !SquareBB(63).IsSingleSquare() {
		t.Fatalf("square 63 should be a single square")
	}
	if (SquareBB(0) | SquareBB(9)).IsSingleSquare() {
		t.Fatalf("two squares reported as single square")
	}
	if !EmptyBB.IsEmpty() || EmptyBB.IsNotEmpty() {
		t.Fatalf("empty set reported as non-empty")
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(0) | SquareBB(63)

	sq1, next1, ok1 := bb.PopLSB()
	if !ok1 || sq1 != 0 {
		t.Fatalf("PopLSB 1: expected (0, true), got (%d, %t)", sq1, ok1)
	}
	if next1 != SquareBB(63) {
		t.Fatalf("PopLSB 1: expected remaining %s, got %s", SquareBB(63), next1)
	}

	sq2, next2, ok2 := next1.PopLSB()
	if !ok2 || sq2 != 63 {
		t.Fatalf("PopLSB 2: expected (63, true), got (%d, %t)", sq2, ok2)
	}
	if next2 != EmptyBB {
		t.Fatalf("PopLSB 2: expected remaining %s, got %s", EmptyBB, next2)
	}

	_, _, ok3 := next2.PopLSB()
	if ok3 {
		t.Fatalf("PopLSB 3: expected (NoSquare, false), got ok=true")
	}
}

func TestBitboardScan(t *testing.T) {
	bb := SquareBB(0) | SquareBB(9) | SquareBB(63)
	expected := []Square{0, 9, 63}
	result := bb.Scan()

	if len(result) != len(expected) {
		t.Fatalf("Scan: expected %d squares, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Fatalf("Scan: expected %v, got %v", expected, result)
		}
	}

	if len(EmptyBB.Scan()) != 0 {
		t.Fatalf("Scan (empty): expected 0 squares, got %d", len(EmptyBB.Scan()))
	}
}

func TestSetAlgebra(t *testing.T) {
	a := SquareBB(0) | SquareBB(9)
	b := SquareBB(9) | SquareBB(18)

	if got := a.Union(b); got != SquareBB(0)|SquareBB(9)|SquareBB(18) {
		t.Fatalf("Union: got %s", got)
	}
	if got := a.Intersect(b); got != SquareBB(9) {
		t.Fatalf("Intersect: got %s", got)
	}
	if got := a.Xor(b); got != SquareBB(0)|SquareBB(18) {
		t.Fatalf("Xor: got %s", got)
	}
	if got := a.AndNot(b); got != SquareBB(0) {
		t.Fatalf("AndNot: got %s", got)
	}
	if got := a.Complement().Intersect(a); got != EmptyBB {
		t.Fatalf("Complement: got %s", got)
	}
	if a.Complement().PopCount() != 62 {
		t.Fatalf("Complement: expected 62 squares, got %d", a.Complement().PopCount())
	}
}

func TestEdgeMasks(t *testing.T) {
	counts := map[string]struct {
		bb   Bitboard
		want int
	}{
		"left":       {LeftEdgeBB, 8},
		"right":      {RightEdgeBB, 8},
		"bottom":     {BottomEdgeBB, 8},
		"top":        {TopEdgeBB, 8},
		"left two":   {LeftTwoBB, 16},
		"right two":  {RightTwoBB, 16},
		"bottom two": {BottomTwoBB, 16},
		"top two":    {TopTwoBB, 16},
		"playable":   {PlayableSquaresBB, 32},
	}
	for name, c := range counts {
		if got := c.bb.PopCount(); got != c.want {
			t.Errorf("%s: expected %d squares, got %d", name, c.want, got)
		}
	}
	for r := 0; r < NumOfRows; r++ {
		if !LeftEdgeBB.Occupied(NewSquare(r, 0)) || !RightEdgeBB.Occupied(NewSquare(r, 7)) {
			t.Fatalf("row %d: side edges misplaced", r)
		}
		if !LeftTwoBB.Occupied(NewSquare(r, 1)) || !RightTwoBB.Occupied(NewSquare(r, 6)) {
			t.Fatalf("row %d: doubled side edges misplaced", r)
		}
	}
	for c := 0; c < NumOfCols; c++ {
		if !BottomTwoBB.Occupied(NewSquare(1, c)) || !TopTwoBB.Occupied(NewSquare(6, c)) {
			t.Fatalf("col %d: doubled rows misplaced", c)
		}
	}
}

func TestShiftMasksBeforeShifting(t *testing.T) {
	// 15 is on the right edge; an unmasked up-right shift lands on 24, the left edge of the next row.
	if got := SquareBB(15).Shift(9, EmptyBB); got != SquareBB(24) {
		t.Fatalf("unmasked shift: expected wrap to 24, got %s", got)
	}
	if got := SquareBB(15).Shift(9, RightEdgeBB); got != EmptyBB {
		t.Fatalf("masked shift: expected empty, got %s", got)
	}
	if got := SquareBB(27).Shift(-9, LeftEdgeBB|BottomEdgeBB); got != SquareBB(18) {
		t.Fatalf("negative shift: expected 18, got %s", got)
	}
	if got := (SquareBB(0) | SquareBB(2)).Shift(7, LeftEdgeBB); got != SquareBB(9) {
		t.Fatalf("masked multi-square shift: expected 9, got %s", got)
	}
}

func TestMidsquare(t *testing.T) {
	cases := []struct {
		a, b Bitboard
		want Bitboard
	}{
		{SquareBB(27), SquareBB(41), SquareBB(34)},
		{SquareBB(41), SquareBB(27), SquareBB(34)},
		{SquareBB(18), SquareBB(32), SquareBB(25)},
		{SquareBB(0), SquareBB(18), SquareBB(9)},
		{SquareBB(63), SquareBB(45), SquareBB(54)},
		{SquareBB(6), SquareBB(24), EmptyBB},  // wraps across the side edge
		{SquareBB(1), SquareBB(15), EmptyBB},  // wraps across the side edge
		{SquareBB(27), SquareBB(27), EmptyBB}, // same square
		{SquareBB(27), SquareBB(36), EmptyBB}, // one step
		{SquareBB(27), SquareBB(43), EmptyBB}, // same column
		{SquareBB(0), SquareBB(27), EmptyBB},  // three steps
		{SquareBB(27) | SquareBB(29), SquareBB(41), EmptyBB},
		{EmptyBB, SquareBB(41), EmptyBB},
	}
	for _, c := range cases {
		if got := Midsquare(c.a, c.b); got != c.want {
			t.Errorf("Midsquare(%v, %v): expected %v, got %v", c.a.Scan(), c.b.Scan(), c.want.Scan(), got.Scan())
		}
	}
}

func TestMidsquareAllPairs(t *testing.T) {
	for i := Square(0); i < NumOfSquaresInBoard; i++ {
		for j := Square(0); j < NumOfSquaresInBoard; j++ {
			want := EmptyBB
			if abs(i.Row()-j.Row()) == 2 && abs(i.Col()-j.Col()) == 2 {
				want = NewSquare((i.Row()+j.Row())/2, (i.Col()+j.Col())/2).BB()
			}
			if got := Midsquare(i.BB(), j.BB()); got != want {
				t.Fatalf("Midsquare(%d, %d): expected %v, got %v", i, j, want.Scan(), got.Scan())
			}
		}
	}
}

func TestBitboardDraw(t *testing.T) {
	bb := Bitboard(0xAA55AA000055AA55)
	expected := "01010101\n" +
		"10101010\n" +
		"01010101\n" +
		"00000000\n" +
		"00000000\n" +
		"10101010\n" +
		"01010101\n" +
		"10101010\n"
	if got := bb.Draw(); got != expected {
		t.Fatalf("Draw: expected\n%s got\n%s", expected, got)
	}
}

func BenchmarkBitboardReverse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		u := uint64(9223372036854775807)
		Bitboard(u).Reverse()
	}
}

func BenchmarkMidsquare(b *testing.B) {
	a, c := SquareBB(27), SquareBB(41)
	for i := 0; i < b.N; i++ {
		Midsquare(a, c)
	}
}

func intStr(i uint64) string {
	return Bitboard(i).String()
}
