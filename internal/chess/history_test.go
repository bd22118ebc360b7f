package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// play applies a move and records it the way a game does.
func play(t *testing.T, b *Board, h *GameHistory, turn Color, from, to string) Color {
	t.Helper()
	before := b.Snapshot(turn)
	effect, err := b.Move(sq(from), sq(to))
	if err != nil {
		t.Fatalf("Move(%s, %s) error: %v", from, to, err)
	}
	next := turn.Opposite()
	h.Record(before, b, next, effect.Piece.Type() == Pawn || !effect.Captured.IsZero())
	return next
}

func TestGameHistory_FiftyMoveCounter(t *testing.T) {
	b := NewInitialBoard()
	h := NewGameHistory(b, White)
	turn := White

	turn = play(t, b, h, turn, "G1", "F3")
	turn = play(t, b, h, turn, "G8", "F6")
	if got := h.FiftyMoveCount(); got != 2 {
		t.Errorf("FiftyMoveCount() = %d; want 2", got)
	}

	turn = play(t, b, h, turn, "E2", "E4")
	if got := h.FiftyMoveCount(); got != 0 {
		t.Errorf("FiftyMoveCount() after pawn move = %d; want 0", got)
	}

	turn = play(t, b, h, turn, "F6", "E4")
	_ = turn
	if got := h.FiftyMoveCount(); got != 0 {
		t.Errorf("FiftyMoveCount() after capture = %d; want 0", got)
	}
	if got := h.Len(); got != 4 {
		t.Errorf("Len() = %d; want 4", got)
	}
}

func TestGameHistory_Repetition(t *testing.T) {
	b := NewInitialBoard()
	h := NewGameHistory(b, White)
	turn := White

	if got := h.RepetitionCount(b, White); got != 1 {
		t.Fatalf("initial RepetitionCount() = %d; want 1", got)
	}

	for i := 0; i < 2; i++ {
		turn = play(t, b, h, turn, "G1", "F3")
		turn = play(t, b, h, turn, "G8", "F6")
		turn = play(t, b, h, turn, "F3", "G1")
		turn = play(t, b, h, turn, "F6", "G8")
	}

	// Knights are back home but flagged as moved; the key ignores that.
	if got := h.RepetitionCount(b, White); got != 3 {
		t.Errorf("RepetitionCount() = %d; want 3", got)
	}
}

func TestGameHistory_Undo(t *testing.T) {
	b := NewInitialBoard()
	h := NewGameHistoryFrom(b, White, 7)
	turn := White

	turn = play(t, b, h, turn, "G1", "F3")
	if got := h.FiftyMoveCount(); got != 8 {
		t.Fatalf("FiftyMoveCount() = %d; want 8", got)
	}
	afterCount := h.RepetitionCount(b, turn)

	snap, err := h.Undo(b, turn)
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if got := h.FiftyMoveCount(); got != 7 {
		t.Errorf("FiftyMoveCount() after undo = %d; want 7", got)
	}
	if got := h.RepetitionCount(b, turn); got != afterCount-1 {
		t.Errorf("RepetitionCount() after undo = %d; want %d", got, afterCount-1)
	}
	if snap.Turn() != White {
		t.Errorf("snapshot Turn() = %v; want White", snap.Turn())
	}
	if got := snap.Board().PieceAt(sq("G1")); got != W(Knight) {
		t.Errorf("snapshot G1 = %v; want unmoved white knight", got)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d; want 0", h.Len())
	}
}

func TestGameHistory_UndoEmpty(t *testing.T) {
	b := NewInitialBoard()
	h := NewGameHistory(b, White)

	_, err := h.Undo(b, White)
	if !errors.Is(err, chesserrors.ErrEmptyHistory) {
		t.Errorf("Undo() error = %v; want ErrEmptyHistory", err)
	}
	if got := h.RepetitionCount(b, White); got != 1 {
		t.Errorf("failed Undo changed the repetition count to %d", got)
	}
}
