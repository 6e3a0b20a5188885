package checkers

// MoveResult is the outcome of a single MakeMove call: Invalid, or Valid carrying the
// color that moves next.
type MoveResult struct {
	valid bool
	next  Color
}

// Invalid reports a refused move. The board was not modified.
var Invalid = MoveResult{}

// Valid returns an accepted move after which next is to move.
func Valid(next Color) MoveResult { return MoveResult{valid: true, next: next} }

// IsValid reports whether the move was applied.
func (r MoveResult) IsValid() bool { return r.valid }

// Next returns the color to move next, and false for an Invalid result.
func (r MoveResult) Next() (Color, bool) { return r.next, r.valid }

// Continues reports whether mover must keep jumping with the piece that just landed.
func (r MoveResult) Continues(mover Color) bool { return r.valid && r.next == mover }

func (r MoveResult) String() string {
	if !r.valid {
		return "Invalid"
	}
	return "Valid(" + r.next.String() + ")"
}

// Method is how a game ended.
type Method uint8

const (
	NoMethod Method = iota
	// NoMoves means the side to move had neither a step nor a jump.
	NoMoves
	// BoardFull means every playable square was occupied.
	BoardFull
)

// Outcome is the terminal judgment of a position.
type Outcome struct {
	over   bool
	draw   bool
	winner Color
	method Method
}

// NoOutcome is the judgment of a game still in progress.
var NoOutcome = Outcome{}

// Victory returns a won game for c.
func Victory(c Color) Outcome { return Outcome{over: true, winner: c, method: NoMoves} }

// Draw returns a drawn game.
func Draw() Outcome { return Outcome{over: true, draw: true, method: BoardFull} }

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool { return o.over }

// IsDraw reports whether the game ended in a draw.
func (o Outcome) IsDraw() bool { return o.draw }

// Winner returns the winning color, and false when there is none.
func (o Outcome) Winner() (Color, bool) { return o.winner, o.over && !o.draw }

// Method returns how the game ended.
func (o Outcome) Method() Method { return o.method }

// String returns the PDN result token: "1-0" and "0-1" name the first mover (White) first.
func (o Outcome) String() string {
	switch {
	case !o.over:
		return "*"
	case o.draw:
		return "1/2-1/2"
	case o.winner == White:
		return "1-0"
	default:
		return "0-1"
	}
}

// Judge decides whether the game is over with toMove to play. A board whose 32 playable
// squares are all occupied is a draw; otherwise toMove loses when it has no step and no jump.
func Judge(b *Board, toMove Color) Outcome {
	if b.Empty().Intersect(PlayableSquaresBB).IsEmpty() {
		return Draw()
	}
	if ColorMoves(b, toMove).Union(ColorCaptures(b, toMove)).IsEmpty() {
		return Victory(toMove.Other())
	}
	return NoOutcome
}
