package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// validateCastling checks the preconditions of a castling king move. The
// caller has already established that king stands on from and that from -> to
// is the castling shape.
func validateCastling(board *chess.Board, king chess.Piece, from, to chess.Position) error {
	if from != chess.KingHome(king.Color()) {
		return errors.Newf(errors.ErrIllegalMove, errors.ErrCastlingNotHome, "%s", from)
	}
	if king.Moved() {
		return errors.New(errors.ErrIllegalMove, errors.ErrCastlingKingMoved)
	}
	if IsInCheck(board, king.Color()) {
		return errors.New(errors.ErrIllegalMove, errors.ErrCastlingInCheck)
	}

	rookFrom, _ := chess.CastlingRookSquares(from, to)
	rook, ok := board.Piece(rookFrom)
	if !ok || rook.Type() != chess.Rook || rook.Color() != king.Color() {
		return errors.Newf(errors.ErrIllegalMove, errors.ErrCastlingRookNotFound, "%s", rookFrom)
	}
	if rook.Moved() {
		return errors.Newf(errors.ErrIllegalMove, errors.ErrCastlingRookMoved, "%s", rookFrom)
	}
	if board.HasObstacle(from, rookFrom) {
		return errors.New(errors.ErrIllegalMove, errors.ErrCastlingPathBlocked)
	}

	opponent := king.Color().Opposite()
	passThrough, _ := from.Offset(sign(to.X()-from.X()), 0)
	if IsSquareAttacked(board, passThrough, opponent) {
		return errors.Newf(errors.ErrIllegalMove, errors.ErrCastlingPathAttacked, "%s", passThrough)
	}
	if IsSquareAttacked(board, to, opponent) {
		return errors.Newf(errors.ErrIllegalMove, errors.ErrCastlingDestinationAttacked, "%s", to)
	}
	return nil
}
