package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the given colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, color chess.Color) bool {
	return IsInCheck(board, color) && !AnyPieceHasLegalMove(board, color)
}

// IsStalemate returns true if the given colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, color chess.Color) bool {
	return !IsInCheck(board, color) && !AnyPieceHasLegalMove(board, color)
}
