package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CalculateNextStatus returns the game status for the position where turn
// is the side now to move. Detectors run in a fixed order: checkmate,
// stalemate, fifty-move rule, repetition, insufficient material.
// Checkmate is tested first because it shares the no-legal-move
// condition with stalemate.
func CalculateNextStatus(board *chess.Board, turn chess.Color, history *chess.GameHistory) chess.GameStatus {
	inCheck := IsInCheck(board, turn)
	if !AnyPieceHasLegalMove(board, turn) {
		if inCheck {
			return chess.CheckmateWin(turn.Opposite())
		}
		return chess.StalemateDraw
	}

	switch {
	case IsFiftyMoveDraw(history):
		return chess.FiftyMoveRuleDraw
	case IsRepetitionDraw(board, turn, history):
		return chess.RepetitionDraw
	case IsInsufficientMaterial(board):
		return chess.InsufficientMaterialDraw
	}
	return chess.Ongoing
}
