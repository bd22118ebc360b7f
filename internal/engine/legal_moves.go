package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move is a source and destination square pair.
type Move struct {
	From chess.Position
	To   chess.Position
}

// String returns the move as concatenated squares, e.g. "E2E4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// AnyPieceHasLegalMove returns true if the given colour has at least one legal move.
func AnyPieceHasLegalMove(board *chess.Board, color chess.Color) bool {
	for _, pl := range board.PiecesOf(color) {
		found := forEachCandidate(board, pl, func(to chess.Position) bool {
			return IsLegalMove(board, pl.Position, to, color)
		})
		if found {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move of the given colour, grouped by piece
// in square order.
func LegalMoves(board *chess.Board, color chess.Color) []Move {
	var moves []Move
	for _, pl := range board.PiecesOf(color) {
		forEachCandidate(board, pl, func(to chess.Position) bool {
			if IsLegalMove(board, pl.Position, to, color) {
				moves = append(moves, Move{From: pl.Position, To: to})
			}
			return false
		})
	}
	return moves
}

// forEachCandidate calls fn with every square the piece could reach by shape,
// without checking legality. Iteration stops as soon as fn returns true, and
// forEachCandidate reports whether that happened. Validation decides which
// candidates are real moves; this only keeps the search from testing all 64
// squares per piece.
func forEachCandidate(board *chess.Board, pl chess.Placement, fn func(to chess.Position) bool) bool {
	from := pl.Position

	switch pl.Piece.Type() {
	case chess.Pawn:
		dir := pl.Piece.Color().Direction()
		for _, off := range [][2]int{{0, dir}, {0, 2 * dir}, {-1, dir}, {1, dir}} {
			if to, ok := from.Offset(off[0], off[1]); ok && fn(to) {
				return true
			}
		}
		return false

	case chess.Knight:
		return offsetCandidates(from, knightOffsets, fn)

	case chess.King:
		if offsetCandidates(from, kingOffsets, fn) {
			return true
		}
		return offsetCandidates(from, [][2]int{{-2, 0}, {2, 0}}, fn)

	case chess.Bishop:
		return rayCandidates(board, from, diagonalDirs, fn)

	case chess.Rook:
		return rayCandidates(board, from, straightDirs, fn)

	case chess.Queen:
		if rayCandidates(board, from, diagonalDirs, fn) {
			return true
		}
		return rayCandidates(board, from, straightDirs, fn)
	}
	return false
}

func offsetCandidates(from chess.Position, offsets [][2]int, fn func(chess.Position) bool) bool {
	for _, off := range offsets {
		if to, ok := from.Offset(off[0], off[1]); ok && fn(to) {
			return true
		}
	}
	return false
}

// rayCandidates yields each square along the rays up to and including the
// first occupied one.
func rayCandidates(board *chess.Board, from chess.Position, dirs [][2]int, fn func(chess.Position) bool) bool {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			if fn(to) {
				return true
			}
			if !board.IsEmpty(to) {
				break // Blocked
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return false
}
