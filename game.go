package checkers

import (
	"log"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidMove is returned when the engine refuses a move.
	ErrInvalidMove = errors.New("checkers: invalid move")
	// ErrGameOver is returned for moves made after the game has been decided.
	ErrGameOver = errors.New("checkers: game is over")
	// ErrMustContinue is returned when a capture sequence is pending and the move does not
	// start from the square the capturing piece landed on.
	ErrMustContinue = errors.New("checkers: capture sequence must continue")
)

// A Game is a session around a Board: it tracks the side to move, the square a pending
// capture sequence continues from, and the cached outcome. The board itself is only
// mutated through MakeMove.
type Game struct {
	board   *Board
	turn    Color
	pending Square
	outcome Outcome
	logger  *log.Logger
}

// NewGame returns a game in the starting position with White to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), White)
}

// NewGameFromBoard returns a game starting from a copy of b with toMove to play.
func NewGameFromBoard(b *Board, toMove Color) *Game {
	g := &Game{
		board:   b.Copy(),
		turn:    toMove,
		pending: NoSquare,
	}
	g.outcome = Judge(g.board, toMove)
	return g
}

// SetLogger traces applied moves to l. A nil logger disables tracing.
func (g *Game) SetLogger(l *log.Logger) { g.logger = l }

// Board returns a copy of the current position.
func (g *Game) Board() *Board { return g.board.Copy() }

// Turn returns the color to move.
func (g *Game) Turn() Color { return g.turn }

// Outcome returns the judgment made after the last move.
func (g *Game) Outcome() Outcome { return g.outcome }

// Pending returns the square a capture sequence must continue from, or NoSquare.
func (g *Game) Pending() Square { return g.pending }

// Move applies a single step or jump for the side to move.
func (g *Game) Move(m Move) (MoveResult, error) {
	if g.outcome.IsOver() {
		return Invalid, ErrGameOver
	}
	if g.pending != NoSquare && m.From != g.pending {
		return Invalid, errors.Wrapf(ErrMustContinue, "from %s, got %s", g.pending, m)
	}

	mover := g.turn
	res := g.board.MakeMove(mover, SquareBB(m.From), SquareBB(m.To))
	next, ok := res.Next()
	if !ok {
		return res, errors.Wrapf(ErrInvalidMove, "%s %s", mover, m)
	}

	g.pending = NoSquare
	if next == mover {
		g.pending = m.To
	}
	g.turn = next
	g.outcome = Judge(g.board, next)
	g.logf("%s %s -> %s", mover, m, res)
	if g.outcome.IsOver() {
		g.logf("game over: %s", g.outcome)
	}
	return res, nil
}

// Play applies every move of a PDN record in order. It stops at the first failing ply.
func (g *Game) Play(record string) error {
	moves, err := ParseMoves(record)
	if err != nil {
		return err
	}
	for i, m := range moves {
		if _, err := g.Move(m); err != nil {
			return errors.Wrapf(err, "ply %d", i+1)
		}
	}
	return nil
}

// LegalMoves returns every single step or jump the side to move may play, in ascending
// order of source and destination. Only jumps are listed while a capture is available,
// and only jumps of the landed piece while a sequence is pending.
func (g *Game) LegalMoves() []Move {
	if g.outcome.IsOver() {
		return nil
	}
	mover := g.turn
	sources := g.board.Pieces(mover)
	if g.pending != NoSquare {
		sources = SquareBB(g.pending)
	}
	mustCapture := ColorCaptures(g.board, mover).IsNotEmpty()

	var moves []Move
	for _, from := range sources.Scan() {
		king := g.board.Kings(mover).Occupied(from)
		var dest Bitboard
		if mustCapture {
			dest = PieceCaptures(g.board, mover, king, from.BB())
		} else {
			dest = PieceMoves(g.board, mover, king, from.BB())
		}
		for _, to := range dest.Scan() {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// IsLegal reports whether m is among LegalMoves.
func (g *Game) IsLegal(m Move) bool {
	return slices.Contains(g.LegalMoves(), m)
}

func (g *Game) logf(format string, v ...interface{}) {
	if g.logger != nil {
		g.logger.Printf(format, v...)
	}
}
