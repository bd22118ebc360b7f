package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var symbolTypes = map[byte]Type{
	'K': King,
	'Q': Queen,
	'R': Rook,
	'B': Bishop,
	'N': Knight,
	'P': Pawn,
}

// ParseSymbol returns the unmoved piece for a symbol as produced by
// Piece.Symbol: "K" is a white king, "k" a black one.
func ParseSymbol(symbol string) (Piece, error) {
	if len(symbol) != 1 {
		return Piece{}, errors.Newf(errors.ErrInvalidPieceCreation, nil, "symbol %q", symbol)
	}
	c := symbol[0]
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	kind, ok := symbolTypes[c]
	if !ok {
		return Piece{}, errors.Newf(errors.ErrInvalidPieceCreation, nil, "symbol %q", symbol)
	}
	return NewPiece(color, kind)
}

// ParsePlacement builds a board from the piece-placement field of a FEN
// record, e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR". Only placement
// is read: every piece starts unmoved and no en-passant target is set.
func ParsePlacement(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return nil, errors.Newf(errors.ErrInvalidPosition, nil, "placement %q: want %d ranks, got %d", placement, BoardSize, len(ranks))
	}

	b := NewBoard()
	for i, row := range ranks {
		y := BoardSize - 1 - i
		x := 0
		for j := 0; j < len(row); j++ {
			if c := row[j]; c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			p, err := ParseSymbol(row[j : j+1])
			if err != nil {
				return nil, errors.Wrapf(err, "placement %q", placement)
			}
			if !onBoard(x, y) {
				return nil, errors.Newf(errors.ErrInvalidPosition, nil, "placement %q: rank %d overflows", placement, y+1)
			}
			b.Place(positionAt(y*BoardSize+x), p)
			x++
		}
		if x != BoardSize {
			return nil, errors.Newf(errors.ErrInvalidPosition, nil, "placement %q: rank %d has %d files", placement, y+1, x)
		}
	}
	return b, nil
}

// BoardFromSymbols builds a board from square -> symbol pairs, the shape
// Board.Symbols returns. Every piece starts unmoved.
func BoardFromSymbols(symbols map[string]string) (*Board, error) {
	b := NewBoard()
	for square, symbol := range symbols {
		pos, err := ParsePosition(square)
		if err != nil {
			return nil, err
		}
		p, err := ParseSymbol(symbol)
		if err != nil {
			return nil, errors.Wrapf(err, "square %s", square)
		}
		b.Place(pos, p)
	}
	return b, nil
}
