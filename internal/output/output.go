// Package output renders games for clients: JSON views for the API and a
// plain text diagram for terminals.
package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const boardEdge = "  +-----------------+\n"

// RenderBoard draws the board with rank 8 at the top. Empty squares are
// shown as '.'
func RenderBoard(b *chess.Board) string {
	var sb strings.Builder
	sb.WriteString(boardEdge)
	for y := chess.BoardSize - 1; y >= 0; y-- {
		sb.WriteByte('1' + byte(y))
		sb.WriteString(" |")
		for x := 0; x < chess.BoardSize; x++ {
			pos, _ := chess.NewPosition(x, y)
			sb.WriteByte(' ')
			if p, ok := b.Piece(pos); ok {
				sb.WriteString(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(boardEdge)
	sb.WriteString("    A B C D E F G H\n")
	return sb.String()
}

// RenderView draws the board of a view followed by a status line.
func RenderView(v *GameView) (string, error) {
	b, err := chess.BoardFromSymbols(v.Board)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(RenderBoard(b))
	sb.WriteString(v.CurrentTurn)
	sb.WriteString(" to move, ")
	sb.WriteString(v.Description)
	if v.Check {
		sb.WriteString(", check")
	}
	sb.WriteByte('\n')
	return sb.String(), nil
}
