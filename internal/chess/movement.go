package chess

// shapeFunc is the movement geometry of one piece type.
type shapeFunc func(p Piece, from, to Position, b *Board) bool

// shapes maps each piece type to its movement geometry.
var shapes = [NumTypes]shapeFunc{
	NoType: func(Piece, Position, Position, *Board) bool { return false },
	King:   kingShape,
	Queen:  queenShape,
	Rook:   rookShape,
	Bishop: bishopShape,
	Knight: knightShape,
	Pawn:   pawnShape,
}

// deltas returns the file and rank differences of a move.
func deltas(from, to Position) (dx, dy int) {
	return to.X() - from.X(), to.Y() - from.Y()
}

// isStraight reports a rook-like move: exactly one of dx, dy is zero.
func isStraight(dx, dy int) bool {
	return (dx == 0) != (dy == 0)
}

// isDiagonal reports a bishop-like move.
func isDiagonal(dx, dy int) bool {
	return dx != 0 && abs(dx) == abs(dy)
}

// IsCastlingShape reports the king's two-file sideways shape.
func IsCastlingShape(from, to Position) bool {
	dx, dy := deltas(from, to)
	return abs(dx) == 2 && dy == 0
}

// KingHome returns the square a king of color starts on.
func KingHome(c Color) Position {
	return Position{x: 4, y: int8(c.BackRank())}
}

// IsCastling reports a king leaving its own home square with the castling
// shape. A king standing anywhere else never castles.
func IsCastling(p Piece, from, to Position) bool {
	return p.kind == King && from == KingHome(p.color) && IsCastlingShape(from, to)
}

// kingShape allows one step in any direction, or the castling shape
// which is validated separately.
func kingShape(_ Piece, from, to Position, _ *Board) bool {
	dx, dy := deltas(from, to)
	if abs(dx) <= 1 && abs(dy) <= 1 && (dx != 0 || dy != 0) {
		return true
	}
	return IsCastlingShape(from, to)
}

func queenShape(_ Piece, from, to Position, _ *Board) bool {
	dx, dy := deltas(from, to)
	return isStraight(dx, dy) || isDiagonal(dx, dy)
}

func rookShape(_ Piece, from, to Position, _ *Board) bool {
	return isStraight(deltas(from, to))
}

func bishopShape(_ Piece, from, to Position, _ *Board) bool {
	return isDiagonal(deltas(from, to))
}

func knightShape(_ Piece, from, to Position, _ *Board) bool {
	dx, dy := deltas(from, to)
	dx, dy = abs(dx), abs(dy)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

// pawnShape allows a forward step or a two-step from the start rank onto an
// empty square, and a forward diagonal step onto an opposing piece. The
// intermediate square of a two-step is checked by the caller. En passant is
// handled by the board, not here.
func pawnShape(p Piece, from, to Position, b *Board) bool {
	dx, dy := deltas(from, to)
	dir := p.color.Direction()
	target, occupied := b.Piece(to)

	if occupied {
		return target.color != p.color && abs(dx) == 1 && dy == dir
	}
	if dx != 0 {
		return false
	}
	return dy == dir || (dy == 2*dir && from.Y() == p.color.PawnStartRank())
}
