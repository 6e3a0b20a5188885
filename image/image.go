// Package image renders checkers boards as SVG.
package image

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/0x5844/checkers"
	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

const (
	sqSize    = 45
	boardSize = sqSize * checkers.NumOfCols
	manRadius = 17
	ringSize  = 9
)

// SVG writes the board in SVG form to w. The board must pass Validate.
func SVG(w io.Writer, b *checkers.Board, opts ...func(*encoder)) error {
	e := newEncoder(w)
	for _, opt := range opts {
		opt(e)
	}
	return e.encode(b)
}

// SquareColors sets the colors of the light and dark squares.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares fills the given squares with c, e.g. to highlight the last move.
func MarkSquares(c color.Color, sqs ...checkers.Square) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = c
		}
	}
}

// Perspective draws the board from the side of c. White's back row is at the bottom by default.
func Perspective(c checkers.Color) func(*encoder) {
	return func(e *encoder) {
		e.perspective = c
	}
}

// WithNumbers prints the PDN number in the corner of every playable square.
func WithNumbers() func(*encoder) {
	return func(e *encoder) {
		e.numbers = true
	}
}

type encoder struct {
	w           *errWriter
	light       color.Color
	dark        color.Color
	perspective checkers.Color
	marks       map[checkers.Square]color.Color
	numbers     bool
}

func newEncoder(w io.Writer) *encoder {
	return &encoder{
		w:           &errWriter{w: w},
		light:       color.RGBA{235, 209, 166, 255},
		dark:        color.RGBA{165, 117, 81, 255},
		perspective: checkers.White,
		marks:       map[checkers.Square]color.Color{},
	}
}

const (
	whiteFill = "fill:#f5f5f5;stroke:#333333;stroke-width:2"
	blackFill = "fill:#222222;stroke:#000000;stroke-width:2"
	crown     = "fill:none;stroke:#d4af37;stroke-width:3"
	number    = "font-family:sans-serif;font-size:10px;fill:#ffffff"
)

func (e *encoder) encode(b *checkers.Board) error {
	if err := b.Validate(); err != nil {
		return errors.Wrap(err, "image: cannot render board")
	}
	squares := b.Squares()

	canvas := svg.New(e.w)
	canvas.Start(boardSize, boardSize)
	for i := 0; i < checkers.NumOfSquaresInBoard; i++ {
		sq := checkers.Square(i)
		x, y := e.origin(sq)

		fill := e.light
		if sq.IsPlayable() {
			fill = e.dark
		}
		if c, ok := e.marks[sq]; ok {
			fill = c
		}
		canvas.Rect(x, y, sqSize, sqSize, "fill:"+colorToHex(fill))

		if e.numbers && sq.IsPlayable() {
			canvas.Text(x+3, y+12, strconv.Itoa(sq.PDN()), number)
		}

		p := squares[sq]
		if p == checkers.NoPiece {
			continue
		}
		cx, cy := x+sqSize/2, y+sqSize/2
		style := whiteFill
		if p.Color() == checkers.Black {
			style = blackFill
		}
		canvas.Circle(cx, cy, manRadius, style)
		if p.IsKing() {
			canvas.Circle(cx, cy, ringSize, crown)
		}
	}
	canvas.End()
	return errors.Wrap(e.w.err, "image: write failed")
}

// origin returns the top left corner of sq on the canvas.
func (e *encoder) origin(sq checkers.Square) (int, int) {
	if e.perspective == checkers.Black {
		return (checkers.NumOfCols - 1 - sq.Col()) * sqSize, sq.Row() * sqSize
	}
	return sq.Col() * sqSize, (checkers.NumOfRows - 1 - sq.Row()) * sqSize
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
