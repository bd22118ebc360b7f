package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, color chess.Color) bool {
	king, ok := board.FindKing(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, color.Opposite())
}

// IsSquareAttacked returns true if any piece of the attacker colour could
// capture on target. Pawns attack their forward diagonals whether or not the
// square is occupied, and a king attacks only its adjacent squares.
func IsSquareAttacked(board *chess.Board, target chess.Position, attacker chess.Color) bool {
	// Pawns attack from the rank behind the target, as seen by the attacker.
	for _, dx := range []int{-1, 1} {
		if from, ok := target.Offset(dx, -attacker.Direction()); ok && holds(board, from, attacker, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if from, ok := target.Offset(off[0], off[1]); ok && holds(board, from, attacker, chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if from, ok := target.Offset(off[0], off[1]); ok && holds(board, from, attacker, chess.King) {
			return true
		}
	}

	if rayAttacked(board, target, attacker, diagonalDirs, chess.Bishop) {
		return true
	}
	return rayAttacked(board, target, attacker, straightDirs, chess.Rook)
}

// rayAttacked walks outward from target and reports whether the first piece
// met along any direction is an attacker slider of kind or a queen.
func rayAttacked(board *chess.Board, target chess.Position, attacker chess.Color, dirs [][2]int, kind chess.Type) bool {
	for _, dir := range dirs {
		pos, ok := target.Offset(dir[0], dir[1])
		for ok {
			if p, occupied := board.Piece(pos); occupied {
				if p.Color() == attacker && (p.Type() == kind || p.Type() == chess.Queen) {
					return true
				}
				break // Blocked
			}
			pos, ok = pos.Offset(dir[0], dir[1])
		}
	}
	return false
}

// holds reports whether pos carries a piece of the given colour and type.
func holds(board *chess.Board, pos chess.Position, color chess.Color, kind chess.Type) bool {
	p, ok := board.Piece(pos)
	return ok && p.Color() == color && p.Type() == kind
}
