package opening

import (
	"bytes"
	"encoding/csv"
	"log"

	_ "embed"

	"github.com/0x5844/checkers"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//go:embed openings.tsv
var openingData []byte

const (
	columnTitle     = 0
	columnPDN       = 1
	expectedColumns = 2
)

// BookPDN is a book of the classic named openings of English draughts, keyed by PDN moves.
// BookPDN is safe for concurrent use.
type BookPDN struct {
	root *node
}

// node represents a position within the opening tree.
type node struct {
	parent   *node
	children map[string]*node // keyed by move string (e.g. "11-15")
	opening  *Opening         // opening named at this exact position, if any
}

// NewBookPDN creates a BookPDN from the embedded opening data. Every line is replayed from the
// starting position and an illegal line fails construction.
func NewBookPDN() (*BookPDN, error) {
	b := &BookPDN{root: &node{children: map[string]*node{}}}

	reader := csv.NewReader(bytes.NewReader(openingData))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read opening data")
	}

	for i, row := range records {
		if i == 0 {
			continue // header
		}
		if len(row) < expectedColumns {
			log.Printf("warning: skipping opening record %d with %d columns", i+1, len(row))
			continue
		}

		title, pdn := row[columnTitle], row[columnPDN]
		moves, err := replay(pdn)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %q", title)
		}
		if len(moves) == 0 {
			continue
		}
		b.insert(&Opening{title: title, pdn: pdn, moves: moves})
	}

	if len(b.root.children) == 0 {
		return nil, errors.New("no openings loaded")
	}
	return b, nil
}

// replay parses a PDN line and checks every move against a fresh game.
func replay(pdn string) ([]checkers.Move, error) {
	moves, err := checkers.ParseMoves(pdn)
	if err != nil {
		return nil, err
	}
	g := checkers.NewGame()
	for i, m := range moves {
		if _, err := g.Move(m); err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
	}
	return moves, nil
}

func (b *BookPDN) insert(o *Opening) {
	n := b.root
	for _, m := range o.moves {
		key := m.String()
		child, ok := n.children[key]
		if !ok {
			child = &node{parent: n, children: map[string]*node{}}
			n.children[key] = child
		}
		n = child
	}
	if n.opening != nil {
		log.Printf("warning: overwriting opening %q with %q at the same position", n.opening.Title(), o.Title())
	}
	n.opening = o
}

// Find implements the Book interface.
func (b *BookPDN) Find(moves []checkers.Move) *Opening {
	for n := b.followPath(b.root, moves); n != nil; n = n.parent {
		if n.opening != nil {
			return n.opening
		}
	}
	return nil
}

// Possible implements the Book interface. Openings are sorted by title.
func (b *BookPDN) Possible(moves []checkers.Move) []*Opening {
	byTitle := map[string]*Opening{}
	for _, n := range b.nodeList(b.followPath(b.root, moves)) {
		if n.opening != nil {
			byTitle[n.opening.title] = n.opening
		}
	}
	titles := maps.Keys(byTitle)
	slices.Sort(titles)

	openings := make([]*Opening, 0, len(titles))
	for _, t := range titles {
		openings = append(openings, byTitle[t])
	}
	return openings
}

func (b *BookPDN) followPath(n *node, moves []checkers.Move) *node {
	if len(moves) == 0 {
		return n
	}
	c, ok := n.children[moves[0].String()]
	if !ok {
		return n
	}
	return b.followPath(c, moves[1:])
}

func (b *BookPDN) nodes(root *node, ch chan *node) {
	ch <- root
	for _, c := range root.children {
		b.nodes(c, ch)
	}
}

func (b *BookPDN) nodeList(root *node) []*node {
	ch := make(chan *node)
	go func() {
		b.nodes(root, ch)
		close(ch)
	}()
	var nodes []*node
	for n := range ch {
		nodes = append(nodes, n)
	}
	return nodes
}
