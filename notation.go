package checkers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NumOfPlayableSquares is the count of dark squares, numbered 1-32 in PDN.
const NumOfPlayableSquares = 32

// ErrBadNotation is returned for move text that cannot be parsed.
var ErrBadNotation = errors.New("checkers: bad move notation")

// SquareFromPDN converts a PDN square number (1-32) to a square. Numbering starts on the
// first mover's back row, which is White's row 0 in this engine, right to left as White
// sees the board.
func SquareFromPDN(n int) (Square, error) {
	if n < 1 || n > NumOfPlayableSquares {
		return NoSquare, errors.Wrapf(ErrBadNotation, "square %d out of range 1-%d", n, NumOfPlayableSquares)
	}
	k := n - 1
	row, pos := k/4, k%4
	col := 6 - 2*pos
	if row%2 == 1 {
		col = 7 - 2*pos
	}
	return NewSquare(row, col), nil
}

// PDN returns the PDN number of a playable square, or 0 for any other square.
func (sq Square) PDN() int {
	if !sq.IsValid() || !sq.IsPlayable() {
		return 0
	}
	row, col := sq.Row(), sq.Col()
	pos := (6 - col) / 2
	if row%2 == 1 {
		pos = (7 - col) / 2
	}
	return row*4 + pos + 1
}

// String returns the PDN number of a playable square, "#n" for a non-playable one and "-"
// for NoSquare.
func (sq Square) String() string {
	switch {
	case !sq.IsValid():
		return "-"
	case sq.IsPlayable():
		return strconv.Itoa(sq.PDN())
	default:
		return "#" + strconv.Itoa(int(sq))
	}
}

// Move is a single step or a single jump of one piece.
type Move struct {
	From Square
	To   Square
}

// IsJump reports whether the move spans two rows, i.e. captures.
func (m Move) IsJump() bool { return abs(m.From.Row()-m.To.Row()) == 2 }

// String returns the move in PDN: "11-15" for a step, "15x24" for a jump.
func (m Move) String() string {
	sep := "-"
	if m.IsJump() {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}

// ParseMove parses one PDN move. A chained jump such as "9x18x27" is returned as its
// single jumps.
func ParseMove(s string) ([]Move, error) {
	sep := "-"
	if strings.Contains(s, "x") {
		sep = "x"
	}
	fields := strings.Split(s, sep)
	if len(fields) < 2 || (sep == "-" && len(fields) != 2) {
		return nil, errors.Wrapf(ErrBadNotation, "%q", s)
	}

	squares := make([]Square, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrBadNotation, "%q: %v", s, err)
		}
		sq, err := SquareFromPDN(n)
		if err != nil {
			return nil, errors.Wrapf(err, "%q", s)
		}
		squares = append(squares, sq)
	}

	moves := make([]Move, 0, len(squares)-1)
	for i := 1; i < len(squares); i++ {
		moves = append(moves, Move{From: squares[i-1], To: squares[i]})
	}
	return moves, nil
}

// ParseMoves parses a whitespace separated PDN move record. Move numbers ("1.", "12..."),
// result tokens and {comments} are skipped.
func ParseMoves(record string) ([]Move, error) {
	var moves []Move
	for i, tok := range strings.Fields(stripComments(record)) {
		if isResultToken(tok) {
			continue
		}
		if dot := strings.LastIndexByte(tok, '.'); dot >= 0 {
			tok = tok[dot+1:]
		}
		if tok == "" {
			continue
		}
		m, err := ParseMove(tok)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("token %d", i+1))
		}
		moves = append(moves, m...)
	}
	return moves, nil
}

func isResultToken(tok string) bool {
	switch tok {
	case "1-0", "0-1", "2-0", "0-2", "1-1", "1/2-1/2", "*":
		return true
	}
	return false
}

func stripComments(s string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '{':
			depth++
			sb.WriteRune(' ')
		case r == '}' && depth > 0:
			depth--
		case depth == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
