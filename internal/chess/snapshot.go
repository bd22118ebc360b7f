package chess

// BoardSnapshot is an immutable copy of a board plus the side to move.
// It is the undo record and the source of the repetition key.
type BoardSnapshot struct {
	squares      [NumSquares]Piece
	turn         Color
	enPassant    Position
	hasEnPassant bool
}

// Turn returns the side to move in the snapshot.
func (s BoardSnapshot) Turn() Color { return s.turn }

// EnPassantTarget returns the recorded en-passant target, if any.
func (s BoardSnapshot) EnPassantTarget() (Position, bool) {
	return s.enPassant, s.hasEnPassant
}

// Pieces returns a copy of the occupied squares.
func (s BoardSnapshot) Pieces() map[Position]Piece {
	out := make(map[Position]Piece)
	for i, p := range s.squares {
		if !p.IsZero() {
			out[positionAt(i)] = p
		}
	}
	return out
}

// Board returns a new board holding the snapshot's position.
func (s BoardSnapshot) Board() *Board {
	b := NewBoard()
	b.Restore(s)
	return b
}

// Castling right bits in PositionKey.
const (
	castleWhiteKingside uint8 = 1 << iota
	castleWhiteQueenside
	castleBlackKingside
	castleBlackQueenside
)

// PositionKey identifies a position for threefold repetition. It compares
// piece placement (colour and type only), the side to move, castling rights
// and an en-passant file when a capture there is available. Moved flags of
// pieces that cannot castle do not take part.
// PositionKey is comparable and used directly as a map key.
type PositionKey struct {
	cells    [NumSquares]uint8
	turn     Color
	castling uint8
	epFile   int8
	epRank   int8
}

// Key returns the repetition key of the snapshot.
func (s BoardSnapshot) Key() PositionKey {
	k := PositionKey{turn: s.turn, epFile: -1, epRank: -1}
	for i, p := range s.squares {
		if !p.IsZero() {
			k.cells[i] = uint8(p.color)<<3 | uint8(p.kind)
		}
	}
	k.castling = castlingRights(&s.squares)
	if s.hasEnPassant && enPassantAvailable(&s.squares, s.enPassant, s.turn) {
		k.epFile = s.enPassant.x
		k.epRank = s.enPassant.y
	}
	return k
}

// castlingRights derives castling rights from the moved flags of kings and
// rooks on their home squares.
func castlingRights(squares *[NumSquares]Piece) uint8 {
	var rights uint8
	bits := map[Color][2]uint8{
		White: {castleWhiteKingside, castleWhiteQueenside},
		Black: {castleBlackKingside, castleBlackQueenside},
	}
	for color, bit := range bits {
		rank := color.BackRank() * BoardSize
		king := squares[rank+4]
		if king.kind != King || king.color != color || king.moved {
			continue
		}
		if r := squares[rank+7]; r.kind == Rook && r.color == color && !r.moved {
			rights |= bit[0]
		}
		if r := squares[rank]; r.kind == Rook && r.color == color && !r.moved {
			rights |= bit[1]
		}
	}
	return rights
}

// enPassantAvailable reports whether a pawn of the side to move stands
// beside the pawn that just made its two-step.
func enPassantAvailable(squares *[NumSquares]Piece, target Position, turn Color) bool {
	y := target.Y() + turn.Opposite().Direction()
	for _, dx := range []int{-1, 1} {
		x := target.X() + dx
		if !onBoard(x, y) {
			continue
		}
		if p := squares[y*BoardSize+x]; p.kind == Pawn && p.color == turn {
			return true
		}
	}
	return false
}
