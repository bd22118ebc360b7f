// Package game holds a single chess match: the board, its history, the side
// to move and the status. A Game is not safe for concurrent use; callers
// hosting many games serialize access per game.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is one match from the initial position (or a given start position)
// to a terminal status.
type Game struct {
	id      string
	board   *chess.Board
	history *chess.GameHistory
	turn    chess.Color
	status  chess.GameStatus
}

// New starts a game from the standard initial position with white to move.
func New(id string) *Game {
	return NewFromPosition(id, chess.NewInitialBoard(), chess.White)
}

// NewFromPosition starts a game from an arbitrary position. The board is
// copied, and the status is computed for the side to move, so a game can
// start already finished.
func NewFromPosition(id string, board *chess.Board, turn chess.Color) *Game {
	b := board.Clone()
	h := chess.NewGameHistory(b, turn)
	return &Game{
		id:      id,
		board:   b,
		history: h,
		turn:    turn,
		status:  engine.CalculateNextStatus(b, turn, h),
	}
}

// Move validates and plays from -> to for the side to move, switches the
// turn and recomputes the status.
func (g *Game) Move(from, to chess.Position) error {
	if g.status.IsFinished() {
		return errors.Newf(errors.ErrGameFinished, nil, "%s", g.status.Description())
	}
	if err := engine.Validate(g.board, from, to, g.turn); err != nil {
		return err
	}

	before := g.board.Snapshot(g.turn)
	effect, err := g.board.Move(from, to)
	if err != nil {
		return err
	}
	g.turn = g.turn.Opposite()

	resetFifty := effect.Piece.Type() == chess.Pawn || !effect.Captured.IsZero()
	g.history.Record(before, g.board, g.turn, resetFifty)
	g.status = engine.CalculateNextStatus(g.board, g.turn, g.history)
	return nil
}

// Undo takes back the last move, whatever the current status, and returns
// the game to Ongoing.
func (g *Game) Undo() error {
	snapshot, err := g.history.Undo(g.board, g.turn)
	if err != nil {
		return err
	}
	g.board.Restore(snapshot)
	g.turn = snapshot.Turn()
	g.status = chess.Ongoing
	return nil
}

// Resign ends the game with a win for the opponent of color.
func (g *Game) Resign(color chess.Color) error {
	if g.status.IsFinished() {
		return errors.Newf(errors.ErrGameFinished, nil, "%s", g.status.Description())
	}
	g.status = chess.ResignationWin(color.Opposite())
	return nil
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() error {
	if g.status.IsFinished() {
		return errors.Newf(errors.ErrGameFinished, nil, "%s", g.status.Description())
	}
	g.status = chess.AgreementDraw
	return nil
}

// LegalMoves lists the legal moves of the side to move. It is empty once
// the game has finished.
func (g *Game) LegalMoves() []engine.Move {
	if g.status.IsFinished() {
		return nil
	}
	return engine.LegalMoves(g.board, g.turn)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.turn)
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board { return g.board.Clone() }

// Turn returns the side to move.
func (g *Game) Turn() chess.Color { return g.turn }

// Status returns the current status.
func (g *Game) Status() chess.GameStatus { return g.status }

// FiftyMoveCount returns the half-moves since the last pawn move or capture.
func (g *Game) FiftyMoveCount() int { return g.history.FiftyMoveCount() }

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int { return g.history.RepetitionCount(g.board, g.turn) }

// MoveCount returns the number of moves that can be undone.
func (g *Game) MoveCount() int { return g.history.Len() }
