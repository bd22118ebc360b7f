// Package engine implements the rules of chess over internal/chess boards:
// attack and check detection, move validation, legal move enumeration, the
// end-of-game detectors and the status calculator.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	// FiftyMoveLimit is the number of half-moves without a pawn move or
	// capture after which the game is drawn.
	FiftyMoveLimit = 100

	// RepetitionLimit is how often a position must occur to draw the game.
	RepetitionLimit = 3
)

// IsFiftyMoveDraw returns true once the history has counted 100 half-moves
// without a pawn move or capture.
func IsFiftyMoveDraw(history *chess.GameHistory) bool {
	return history.FiftyMoveCount() >= FiftyMoveLimit
}

// IsRepetitionDraw returns true if the position with turn to move has
// occurred at least three times.
func IsRepetitionDraw(board *chess.Board, turn chess.Color, history *chess.GameHistory) bool {
	return history.RepetitionCount(board, turn) >= RepetitionLimit
}

// IsInsufficientMaterial returns true if neither side has enough material
// to checkmate. Insufficient material is:
// - K vs K
// - K vs K+B or K+N
// - K+B or K+N vs K+B or K+N
// - K vs K+N+N
// Any pawn, rook or queen on the board means sufficient material.
func IsInsufficientMaterial(board *chess.Board) bool {
	var minors, knights [3]int // indexed by chess.Color

	for _, color := range []chess.Color{chess.White, chess.Black} {
		for _, pl := range board.PiecesOf(color) {
			switch pl.Piece.Type() {
			case chess.King:
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight:
				knights[color]++
				minors[color]++
			default:
				minors[color]++
			}
		}
	}

	w, b := minors[chess.White], minors[chess.Black]
	switch {
	case w <= 1 && b <= 1:
		return true
	case w == 0 && b == 2:
		return knights[chess.Black] == 2
	case b == 0 && w == 2:
		return knights[chess.White] == 2
	}
	return false
}
