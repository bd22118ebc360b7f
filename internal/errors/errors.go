// Package errors provides sentinel errors and error types for the chess engine
// and the game service built on it. Failures carry both a kind (the taxonomy
// an API layer maps to a response) and a specific reason, and both can be
// inspected with errors.Is().
package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the engine matches exactly one of these.
var (
	// ErrInvalidPosition indicates malformed coordinates or algebraic notation.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrPieceNotFound indicates an operation referenced an empty source square.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrInvalidPieceCreation indicates a piece built with a missing colour or type.
	ErrInvalidPieceCreation = errors.New("invalid piece creation")

	// ErrRuleViolation indicates a move that breaks a basic movement rule.
	ErrRuleViolation = errors.New("rule violation")

	// ErrIllegalMove indicates a move that leaves the mover's king in check
	// or fails a castling precondition.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameFinished indicates a move attempted on a game that has ended.
	ErrGameFinished = errors.New("game already finished")

	// ErrEmptyHistory indicates an undo with nothing to undo.
	ErrEmptyHistory = errors.New("no move history")
)

// Service level kinds.
var (
	ErrGameNotFound  = errors.New("game not found")
	ErrNotAPlayer    = errors.New("not a player of this game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrGameFull      = errors.New("game already has two players")
	ErrStoreFull     = errors.New("game store is full")
	ErrUndoDisabled  = errors.New("undo is disabled")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Reasons for ErrInvalidPosition.
var (
	ErrPositionEmpty  = errors.New("position is empty")
	ErrPositionLength = errors.New("position must be two characters")
	ErrPositionFile   = errors.New("file must be A-H")
	ErrPositionRank   = errors.New("rank must be 1-8")
	ErrPositionRange  = errors.New("coordinates must be between 0 and 7")
)

// Reasons for ErrRuleViolation.
var (
	ErrWrongTurn        = errors.New("piece does not belong to the side to move")
	ErrSameSquare       = errors.New("source and destination are the same square")
	ErrFriendlyFire     = errors.New("destination holds a piece of the same colour")
	ErrInvalidPieceMove = errors.New("piece cannot move that way")
	ErrPathBlocked      = errors.New("path is blocked")
)

// Reasons for ErrIllegalMove.
var (
	ErrKingInCheckAfterMove        = errors.New("move leaves the king in check")
	ErrCastlingKingMoved           = errors.New("king has already moved")
	ErrCastlingNotHome             = errors.New("king is not on its home square")
	ErrCastlingInCheck             = errors.New("cannot castle out of check")
	ErrCastlingRookNotFound        = errors.New("no castling rook on that side")
	ErrCastlingRookMoved           = errors.New("castling rook has already moved")
	ErrCastlingPathBlocked         = errors.New("pieces between king and rook")
	ErrCastlingPathAttacked        = errors.New("king would pass through an attacked square")
	ErrCastlingDestinationAttacked = errors.New("king would castle into check")
)

// RuleError is a failure with a kind, a specific reason and optional detail.
// errors.Is() matches both Kind and Reason.
type RuleError struct {
	Kind   error  // One of the error kinds above
	Reason error  // The specific reason (may be nil)
	Detail string // Free-form context such as the offending input
}

// Error returns "kind: reason (detail)" with empty parts left out.
func (e *RuleError) Error() string {
	msg := "error"
	if e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Reason != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Reason)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

// Unwrap exposes both the kind and the reason to errors.Is() and errors.As().
func (e *RuleError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	return errs
}

// New returns a RuleError of the given kind and reason.
func New(kind, reason error) error {
	return &RuleError{Kind: kind, Reason: reason}
}

// Newf returns a RuleError with formatted detail.
func Newf(kind, reason error, format string, args ...interface{}) error {
	return &RuleError{Kind: kind, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Reason returns the specific reason of err, or nil if err is not a RuleError.
func Reason(err error) error {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason
	}
	return nil
}

// Kind returns the kind of err, or nil if err is not a RuleError.
func Kind(err error) error {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return nil
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
