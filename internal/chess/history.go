package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// historyEntry is one undo record: the position before a move and the
// fifty-move count at that time.
type historyEntry struct {
	snapshot       BoardSnapshot
	fiftyMoveCount int
}

// GameHistory tracks the fifty-move counter, how many times each position
// has occurred, and the undo stack.
type GameHistory struct {
	// Half-moves since the last pawn move or capture.
	fiftyMoveCount int

	// Occurrences of each (position, side to move).
	repetitions map[PositionKey]int

	// Positions before each move, most recent last.
	undo []historyEntry
}

// NewGameHistory creates a history with the given position recorded once.
func NewGameHistory(b *Board, turn Color) *GameHistory {
	return NewGameHistoryFrom(b, turn, 0)
}

// NewGameHistoryFrom creates a history with the given position recorded once
// and the fifty-move counter preset, for games resumed mid-way.
func NewGameHistoryFrom(b *Board, turn Color, fiftyMoveCount int) *GameHistory {
	h := &GameHistory{
		fiftyMoveCount: fiftyMoveCount,
		repetitions:    make(map[PositionKey]int),
	}
	h.repetitions[b.Snapshot(turn).Key()]++
	return h
}

// Record stores the undo entry for a move and updates the counters for the
// position after it. before is the snapshot taken before the move was
// applied; after and nextTurn describe the resulting position. resetFifty
// is true after a pawn move or a capture.
func (h *GameHistory) Record(before BoardSnapshot, after *Board, nextTurn Color, resetFifty bool) {
	h.undo = append(h.undo, historyEntry{snapshot: before, fiftyMoveCount: h.fiftyMoveCount})
	if resetFifty {
		h.fiftyMoveCount = 0
	} else {
		h.fiftyMoveCount++
	}
	h.repetitions[after.Snapshot(nextTurn).Key()]++
}

// Undo pops the last move. The repetition count of the position being left
// (current board with turn to move) is decremented, the fifty-move counter is
// restored, and the snapshot of the previous position is returned.
func (h *GameHistory) Undo(current *Board, turn Color) (BoardSnapshot, error) {
	if len(h.undo) == 0 {
		return BoardSnapshot{}, errors.New(errors.ErrEmptyHistory, nil)
	}
	key := current.Snapshot(turn).Key()
	if n := h.repetitions[key]; n <= 1 {
		delete(h.repetitions, key)
	} else {
		h.repetitions[key] = n - 1
	}

	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.fiftyMoveCount = last.fiftyMoveCount
	return last.snapshot, nil
}

// FiftyMoveCount returns the half-moves since the last pawn move or capture.
func (h *GameHistory) FiftyMoveCount() int {
	return h.fiftyMoveCount
}

// RepetitionCount returns how many times the position has occurred.
func (h *GameHistory) RepetitionCount(b *Board, turn Color) int {
	return h.repetitions[b.Snapshot(turn).Key()]
}

// Len returns the number of moves that can be undone.
func (h *GameHistory) Len() int {
	return len(h.undo)
}
