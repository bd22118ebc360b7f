package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Piece is an immutable chess piece: colour, type and whether it has ever
// moved. The zero value means "no piece". Two pieces are equal when all
// three fields are equal.
type Piece struct {
	color Color
	kind  Type
	moved bool
}

// NewPiece returns an unmoved piece of the given colour and type.
func NewPiece(color Color, kind Type) (Piece, error) {
	if !color.Valid() || !kind.Valid() {
		return Piece{}, errors.Newf(errors.ErrInvalidPieceCreation, nil, "colour %v, type %v", color, kind)
	}
	return Piece{color: color, kind: kind}, nil
}

// MustPiece is like NewPiece but panics on invalid arguments.
// It is intended for package-level tables and tests.
func MustPiece(color Color, kind Type) Piece {
	p, err := NewPiece(color, kind)
	if err != nil {
		panic(err)
	}
	return p
}

// W creates an unmoved white piece.
func W(kind Type) Piece { return MustPiece(White, kind) }

// B creates an unmoved black piece.
func B(kind Type) Piece { return MustPiece(Black, kind) }

// Color returns the colour of the piece.
func (p Piece) Color() Color { return p.color }

// Type returns the type of the piece.
func (p Piece) Type() Type { return p.kind }

// Moved reports whether the piece has moved at least once.
func (p Piece) Moved() bool { return p.moved }

// IsZero reports whether p is the "no piece" value.
func (p Piece) IsZero() bool { return p.kind == NoType }

// IsMajor reports whether the piece is a queen or rook.
func (p Piece) IsMajor() bool { return p.kind.IsMajor() }

// IsMinor reports whether the piece is a bishop or knight.
func (p Piece) IsMinor() bool { return p.kind.IsMinor() }

// AfterMove returns a copy of the piece with the moved flag set.
func (p Piece) AfterMove() Piece {
	p.moved = true
	return p
}

// Symbol returns the single-character symbol: upper case for white,
// lower case for black.
func (p Piece) Symbol() string {
	if p.IsZero() {
		return ""
	}
	s := string(p.kind.Letter())
	if p.color == Black {
		return strings.ToLower(s)
	}
	return s
}

// String returns a readable description such as "WHITE KING".
func (p Piece) String() string {
	if p.IsZero() {
		return "NONE"
	}
	return p.color.String() + " " + p.kind.String()
}

// IsShapeValid reports whether the move from -> to fits the movement
// geometry of the piece. Obstruction is not considered; pawns consult the
// board for occupancy of the destination.
func (p Piece) IsShapeValid(from, to Position, b *Board) bool {
	if from == to || !p.kind.Valid() {
		return false
	}
	return shapes[p.kind](p, from, to, b)
}
