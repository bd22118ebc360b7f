package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is a chess board: 64 squares of optional pieces plus the en-passant
// target square. A Board is a value type internally, so Clone is a single
// array copy.
type Board struct {
	// Squares indexed by Position.Index(); the zero Piece means empty.
	squares [NumSquares]Piece

	// Square skipped by a pawn's two-step advance on the last move.
	enPassant    Position
	hasEnPassant bool
}

// Placement is a piece standing on a square.
type Placement struct {
	Position Position
	Piece    Piece
}

// MoveEffect describes what Board.Move did besides relocating the piece.
type MoveEffect struct {
	Piece     Piece // The piece as it stood before moving
	Captured  Piece // The captured piece, zero if none
	Castled   bool  // King and rook both relocated
	EnPassant bool  // The captured pawn stood beside the destination
	Promoted  bool  // The pawn became a queen
}

// backRankTypes is the order of pieces on the first and eighth ranks.
var backRankTypes = [BoardSize]Type{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Initialize()
	return b
}

// Initialize sets up the standard chess starting position.
func (b *Board) Initialize() {
	*b = Board{}
	for _, color := range []Color{White, Black} {
		for x := 0; x < BoardSize; x++ {
			b.squares[color.BackRank()*BoardSize+x] = MustPiece(color, backRankTypes[x])
			b.squares[color.PawnStartRank()*BoardSize+x] = MustPiece(color, Pawn)
		}
	}
}

// Piece returns the piece at pos and whether the square is occupied.
func (b *Board) Piece(pos Position) (Piece, bool) {
	p := b.squares[pos.Index()]
	return p, !p.IsZero()
}

// PieceAt returns the piece at pos, or the zero Piece if the square is empty.
func (b *Board) PieceAt(pos Position) Piece {
	return b.squares[pos.Index()]
}

// IsEmpty reports whether the square is empty.
func (b *Board) IsEmpty(pos Position) bool {
	return b.squares[pos.Index()].IsZero()
}

// Place puts a piece on a square, replacing whatever stood there.
func (b *Board) Place(pos Position, p Piece) {
	b.squares[pos.Index()] = p
}

// Remove empties a square.
func (b *Board) Remove(pos Position) {
	b.squares[pos.Index()] = Piece{}
}

// MovePiece relocates the piece at from to to, overwriting any piece there.
// The moved piece is marked as moved. No rules are checked.
func (b *Board) MovePiece(from, to Position) error {
	p, ok := b.Piece(from)
	if !ok {
		return errors.Newf(errors.ErrPieceNotFound, nil, "%s", from)
	}
	b.relocate(p, from, to)
	return nil
}

// relocate moves p from one square to another and sets its moved flag.
func (b *Board) relocate(p Piece, from, to Position) {
	b.squares[from.Index()] = Piece{}
	b.squares[to.Index()] = p.AfterMove()
}

// Move applies a move including its compound effects: castling moves the
// rook too, an en-passant capture removes the pawn beside the destination,
// a pawn reaching the last rank becomes a queen, and the en-passant target
// is set after a pawn two-step and cleared after anything else.
// Move does not check legality.
func (b *Board) Move(from, to Position) (MoveEffect, error) {
	p, ok := b.Piece(from)
	if !ok {
		return MoveEffect{}, errors.Newf(errors.ErrPieceNotFound, nil, "%s", from)
	}
	effect := MoveEffect{Piece: p}

	switch {
	case IsCastling(p, from, to):
		b.castle(p, from, to)
		effect.Castled = true
		b.clearEnPassant()
		return effect, nil

	case b.isEnPassantCapture(p, from, to):
		captured := Position{x: to.x, y: from.y}
		effect.Captured = b.squares[captured.Index()]
		effect.EnPassant = true
		b.Remove(captured)
		b.relocate(p, from, to)
		b.clearEnPassant()
		return effect, nil
	}

	effect.Captured = b.squares[to.Index()]
	b.relocate(p, from, to)
	b.updateEnPassant(p, from, to)

	if p.kind == Pawn && to.Y() == p.color.PromotionRank() {
		b.squares[to.Index()] = Piece{color: p.color, kind: Queen, moved: true}
		effect.Promoted = true
	}
	return effect, nil
}

// castle moves the king two files and the corner rook next to it.
func (b *Board) castle(king Piece, from, to Position) {
	rookFrom, rookTo := CastlingRookSquares(from, to)
	b.relocate(king, from, to)
	if rook, ok := b.Piece(rookFrom); ok {
		b.relocate(rook, rookFrom, rookTo)
	}
}

// CastlingRookSquares returns where the rook stands and lands for a castling
// king move from -> to.
func CastlingRookSquares(from, to Position) (rookFrom, rookTo Position) {
	dir := sign(to.X() - from.X())
	rookX := 0
	if dir > 0 {
		rookX = BoardSize - 1
	}
	return Position{x: int8(rookX), y: from.y}, Position{x: from.x + int8(dir), y: from.y}
}

// isEnPassantCapture reports a pawn moving diagonally onto the en-passant target.
func (b *Board) isEnPassantCapture(p Piece, from, to Position) bool {
	return p.kind == Pawn && b.hasEnPassant && to == b.enPassant && from.x != to.x
}

// IsEnPassantCapture reports whether moving the piece at from to to would be
// an en-passant capture of an opposing pawn.
func (b *Board) IsEnPassantCapture(from, to Position) bool {
	p, ok := b.Piece(from)
	if !ok || !b.isEnPassantCapture(p, from, to) {
		return false
	}
	dx, dy := deltas(from, to)
	if abs(dx) != 1 || dy != p.color.Direction() {
		return false
	}
	victim, ok := b.Piece(Position{x: to.x, y: from.y})
	return ok && victim.kind == Pawn && victim.color != p.color
}

// updateEnPassant records the skipped square after a pawn two-step.
func (b *Board) updateEnPassant(p Piece, from, to Position) {
	if p.kind == Pawn && abs(to.Y()-from.Y()) == 2 {
		b.enPassant = Position{x: from.x, y: (from.y + to.y) / 2}
		b.hasEnPassant = true
		return
	}
	b.clearEnPassant()
}

func (b *Board) clearEnPassant() {
	b.enPassant = Position{}
	b.hasEnPassant = false
}

// EnPassantTarget returns the en-passant target square, if any.
func (b *Board) EnPassantTarget() (Position, bool) {
	return b.enPassant, b.hasEnPassant
}

// SetEnPassantTarget records pos as the en-passant target. It is used when
// setting up a position by hand.
func (b *Board) SetEnPassantTarget(pos Position) {
	b.enPassant = pos
	b.hasEnPassant = true
}

// HasObstacle reports whether any square strictly between from and to is
// occupied. Only straight and diagonal lines can be obstructed; every other
// shape reports false.
func (b *Board) HasObstacle(from, to Position) bool {
	dx, dy := deltas(from, to)
	if !isStraight(dx, dy) && !isDiagonal(dx, dy) {
		return false
	}
	stepX, stepY := sign(dx), sign(dy)
	distance := abs(dx)
	if abs(dy) > distance {
		distance = abs(dy)
	}
	for i := 1; i < distance; i++ {
		x := from.X() + i*stepX
		y := from.Y() + i*stepY
		if !b.squares[y*BoardSize+x].IsZero() {
			return true
		}
	}
	return false
}

// PiecesOf returns the pieces of one colour in square order (A1, B1, ... H8).
func (b *Board) PiecesOf(color Color) []Placement {
	var out []Placement
	for i, p := range b.squares {
		if !p.IsZero() && p.color == color {
			out = append(out, Placement{Position: positionAt(i), Piece: p})
		}
	}
	return out
}

// Pieces returns a copy of the occupied squares.
func (b *Board) Pieces() map[Position]Piece {
	out := make(map[Position]Piece)
	for i, p := range b.squares {
		if !p.IsZero() {
			out[positionAt(i)] = p
		}
	}
	return out
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.squares {
		if !p.IsZero() {
			n++
		}
	}
	return n
}

// CountOf returns the number of pieces of one colour.
func (b *Board) CountOf(color Color) int {
	n := 0
	for _, p := range b.squares {
		if !p.IsZero() && p.color == color {
			n++
		}
	}
	return n
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(color Color) (Position, bool) {
	for i, p := range b.squares {
		if p.kind == King && p.color == color {
			return positionAt(i), true
		}
	}
	return Position{}, false
}

// Clone returns an independent copy of the board. Callers evaluating a
// hypothetical position work on the clone and never on the original.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Hypothetical returns a clone of the board with the move from -> to applied.
// The receiver is not modified.
func (b *Board) Hypothetical(from, to Position) *Board {
	c := b.Clone()
	_, _ = c.Move(from, to)
	return c
}

// Snapshot captures the board and the side to move.
func (b *Board) Snapshot(turn Color) BoardSnapshot {
	return BoardSnapshot{
		squares:      b.squares,
		turn:         turn,
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
	}
}

// Restore replaces the board contents with those of a snapshot.
func (b *Board) Restore(s BoardSnapshot) {
	b.squares = s.squares
	b.enPassant = s.enPassant
	b.hasEnPassant = s.hasEnPassant
}

// Symbols returns the board as algebraic square -> piece symbol, omitting
// empty squares. This is the board representation exchanged with clients.
func (b *Board) Symbols() map[string]string {
	out := make(map[string]string)
	for i, p := range b.squares {
		if !p.IsZero() {
			out[positionAt(i).String()] = p.Symbol()
		}
	}
	return out
}
