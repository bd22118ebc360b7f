package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Validate checks whether the side to move may play from -> to. Checks run
// in a fixed order and the first failure is returned:
//
//  1. a piece stands on from (ErrPieceNotFound)
//  2. it belongs to turn (ErrRuleViolation / ErrWrongTurn)
//  3. from and to differ (ErrSameSquare)
//  4. to does not hold a friendly piece (ErrFriendlyFire)
//  5. the piece can move in that shape, or it is an en-passant capture (ErrInvalidPieceMove)
//  6. castling preconditions, for a king moving two files (ErrIllegalMove / ErrCastling*)
//  7. the path is clear, knights excepted (ErrPathBlocked)
//  8. the mover's king is not in check afterwards (ErrIllegalMove / ErrKingInCheckAfterMove)
//
// Validate never modifies the board.
func Validate(board *chess.Board, from, to chess.Position, turn chess.Color) error {
	piece, ok := board.Piece(from)
	if !ok {
		return errors.Newf(errors.ErrPieceNotFound, nil, "%s", from)
	}
	if piece.Color() != turn {
		return errors.Newf(errors.ErrRuleViolation, errors.ErrWrongTurn, "%s on %s, %s to move", piece, from, turn)
	}
	if from == to {
		return errors.Newf(errors.ErrRuleViolation, errors.ErrSameSquare, "%s", from)
	}
	if target, ok := board.Piece(to); ok && target.Color() == piece.Color() {
		return errors.Newf(errors.ErrRuleViolation, errors.ErrFriendlyFire, "%s", to)
	}
	if !piece.IsShapeValid(from, to, board) && !board.IsEnPassantCapture(from, to) {
		return errors.Newf(errors.ErrRuleViolation, errors.ErrInvalidPieceMove, "%s %s-%s", piece.Type(), from, to)
	}

	if piece.Type() == chess.King && chess.IsCastlingShape(from, to) {
		if err := validateCastling(board, piece, from, to); err != nil {
			return err
		}
	}

	if piece.Type() != chess.Knight && board.HasObstacle(from, to) {
		return errors.Newf(errors.ErrRuleViolation, errors.ErrPathBlocked, "%s-%s", from, to)
	}

	if IsInCheck(board.Hypothetical(from, to), turn) {
		return errors.Newf(errors.ErrIllegalMove, errors.ErrKingInCheckAfterMove, "%s-%s", from, to)
	}
	return nil
}

// IsLegalMove is the boolean form of Validate.
func IsLegalMove(board *chess.Board, from, to chess.Position, turn chess.Color) bool {
	return Validate(board, from, to, turn) == nil
}
