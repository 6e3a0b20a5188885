package image

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/0x5844/checkers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, b *checkers.Board, opts ...func(*encoder)) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, b, opts...))
	return buf.String()
}

func TestSVGStartingPosition(t *testing.T) {
	out := render(t, checkers.NewBoard())

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 24, strings.Count(out, "<circle"))
	assert.Equal(t, 12, strings.Count(out, whiteFill))
	assert.Equal(t, 12, strings.Count(out, blackFill))
	assert.NotContains(t, out, crown)
	assert.NotContains(t, out, "<text")
}

func TestSVGKings(t *testing.T) {
	b := checkers.BoardFromSquareMap(map[checkers.Square]checkers.Piece{
		18: checkers.WhiteKing,
		45: checkers.BlackKing,
		27: checkers.BlackMan,
	})
	out := render(t, b)

	assert.Equal(t, 5, strings.Count(out, "<circle"))
	assert.Equal(t, 2, strings.Count(out, crown))
}

func TestSVGPerspective(t *testing.T) {
	b := checkers.BoardFromSquareMap(map[checkers.Square]checkers.Piece{0: checkers.WhiteMan})

	assert.Contains(t, render(t, b), `cx="22" cy="337"`)
	assert.Contains(t, render(t, b, Perspective(checkers.Black)), `cx="337" cy="22"`)
}

func TestSVGOptions(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	out := render(t, checkers.NewBoard(),
		MarkSquares(red, 18, 27),
		SquareColors(color.White, color.Black),
		WithNumbers(),
	)

	assert.Equal(t, 2, strings.Count(out, "fill:#ff0000"))
	assert.Equal(t, 32, strings.Count(out, `style="fill:#ffffff"`))
	assert.Equal(t, 30, strings.Count(out, `style="fill:#000000"`))
	assert.Equal(t, 32, strings.Count(out, "<text"))
	assert.Contains(t, out, ">32</text>")
}

func TestSVGRejectsInvalidBoard(t *testing.T) {
	b := checkers.BoardFromSquareMap(map[checkers.Square]checkers.Piece{1: checkers.WhiteMan})
	var buf bytes.Buffer
	assert.Error(t, SVG(&buf, b))
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	err := SVG(failingWriter{}, checkers.NewBoard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestColorToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", colorToHex(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, "#000000", colorToHex(color.Black))
	assert.Equal(t, "#ffffff", colorToHex(color.White))
}
