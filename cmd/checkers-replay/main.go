// Command checkers-replay plays a PDN move record from the starting position and reports the
// final position, the named opening and the result.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/0x5844/checkers"
	"github.com/0x5844/checkers/image"
	"github.com/0x5844/checkers/opening"
	"github.com/pkg/errors"
)

var (
	fileMoves = flag.String("moves", "", "file containing a PDN move record (default stdin)")
	fileSVG   = flag.String("svg", "", "write the final position as SVG to this file")
	verbose   = flag.Bool("verbose", false, "log every ply")
)

var lastMove = color.RGBA{246, 246, 105, 255}

func main() {
	flag.Parse()

	in := io.Reader(os.Stdin)
	if *fileMoves != "" {
		f, err := os.Open(*fileMoves)
		if err != nil {
			log.Fatalf("error opening moves file: %s", err)
		}
		defer f.Close()
		in = f
	}

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if err := replay(in, os.Stdout, *fileSVG, logger); err != nil {
		log.Fatalf("error replaying game: %s", err)
	}
}

func replay(r io.Reader, w io.Writer, svgPath string, logger *log.Logger) error {
	record, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read record")
	}
	moves, err := checkers.ParseMoves(string(record))
	if err != nil {
		return err
	}

	g := checkers.NewGame()
	g.SetLogger(logger)
	for i, m := range moves {
		if _, err := g.Move(m); err != nil {
			return errors.Wrapf(err, "ply %d", i+1)
		}
	}

	book, err := opening.NewBookPDN()
	if err != nil {
		return err
	}
	title := "unknown"
	if o := book.Find(moves); o != nil {
		title = o.Title()
	}

	fmt.Fprint(w, g.Board().Draw())
	fmt.Fprintf(w, "opening: %s\n", title)
	fmt.Fprintf(w, "plies: %d\n", len(moves))
	if g.Outcome().IsOver() {
		fmt.Fprintf(w, "result: %s\n", g.Outcome())
	} else {
		fmt.Fprintf(w, "result: %s, %s to move\n", g.Outcome(), g.Turn())
	}

	if svgPath == "" {
		return nil
	}
	return writeSVG(svgPath, g.Board(), moves)
}

func writeSVG(path string, b *checkers.Board, moves []checkers.Move) error {
	var marked []checkers.Square
	if len(moves) > 0 {
		last := moves[len(moves)-1]
		marked = append(marked, last.From, last.To)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create svg")
	}
	if err := image.SVG(f, b, image.WithNumbers(), image.MarkSquares(lastMove, marked...)); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close svg")
}
