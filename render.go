package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// squareSize is the edge length, in pixels, of one board square in the
// rendered SVG.
const squareSize = 64

// lightSquare and darkSquare are the board's checker colors.
const (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
)

// WriteSVG renders b as an 8x8 SVG diagram, rank 8 at the top, to w.
// Pieces are drawn as their FEN letter centered in the square; a real
// piece set is a front-end concern outside this engine's scope.
func WriteSVG(w io.Writer, b Board) {
	dim := squareSize * 8
	canvas := svg.New(w)
	canvas.Start(dim, dim)
	defer canvas.End()

	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			x := f * squareSize
			y := (7 - r) * squareSize
			color := lightSquare
			if (r+f)%2 == 0 {
				color = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

			p := b.PieceAt(NewSquare(f, r))
			if p.Type == NoPieceType {
				continue
			}
			textColor := "black"
			if p.Color == Black {
				textColor = "#202020"
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+8, p.String(),
				"text-anchor:middle;font-size:32px;fill:"+textColor)
		}
	}
}
