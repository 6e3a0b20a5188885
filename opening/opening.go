// Package opening names checkers openings and explores the lines that follow a sequence of moves.
package opening

import (
	"github.com/0x5844/checkers"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// An Opening is a named sequence of moves from the starting position.
type Opening struct {
	title string
	pdn   string
	moves []checkers.Move
}

// Title returns the traditional name of the opening.
func (o *Opening) Title() string {
	return o.title
}

// PDN returns the opening moves in PDN.
func (o *Opening) PDN() string {
	return o.pdn
}

// Moves returns the single steps defining the opening.
func (o *Opening) Moves() []checkers.Move {
	return slices.Clone(o.moves)
}

// Game returns a new game with the opening already played.
func (o *Opening) Game() (*checkers.Game, error) {
	g := checkers.NewGame()
	if err := g.Play(o.pdn); err != nil {
		return nil, errors.Wrapf(err, "opening %q", o.title)
	}
	return g, nil
}

// Book is an opening book that returns openings for move sequences.
type Book interface {
	// Find returns the most specific opening for the list of moves. If no opening is found, Find returns nil.
	Find(moves []checkers.Move) *Opening
	// Possible returns the possible openings after the moves given. If moves is empty or nil all openings are returned.
	Possible(moves []checkers.Move) []*Opening
}

var _ Book = (*BookPDN)(nil)
