package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestIsInsufficientMaterial tests various material configurations
func TestIsInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3", true},
		{"K+N vs K+B", "4kb2/8/8/8/8/8/8/4KN2", true},
		{"K+B vs K+B opposite colours", "5b2/4k3/8/8/8/8/8/3BK3", true},
		{"K vs K+N+N", "4k1nn/8/8/8/8/8/8/4K3", true},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/4KNN1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3", false},
		{"K+N vs K+B+p", "4kb2/7p/8/8/8/8/8/4KN2", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2", false},
		{"K+B+N vs K", "4k3/8/8/8/8/8/8/2B1KN2", false},
		{"K+N+N vs K+N", "4k1n1/8/8/8/8/8/8/4KNN1", false},
		{"standard starting position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.BoardFromPlacement(t, tt.placement)
			if got := IsInsufficientMaterial(board); got != tt.want {
				t.Errorf("IsInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInsufficientMaterial_PawnFlipsResult(t *testing.T) {
	board := testutil.BoardFromMap(t, map[string]string{"E1": "K", "G1": "N", "E8": "k", "F8": "b"})
	testutil.AssertTrue(t, IsInsufficientMaterial(board), "K+N vs K+B")

	for _, color := range []chess.Color{chess.White, chess.Black} {
		withPawn := board.Clone()
		withPawn.Place(testutil.MustPosition(t, "A4"), chess.MustPiece(color, chess.Pawn))
		testutil.AssertFalse(t, IsInsufficientMaterial(withPawn), "with a %v pawn", color)
	}
}

func TestIsFiftyMoveDraw(t *testing.T) {
	board := chess.NewInitialBoard()

	tests := []struct {
		count int
		want  bool
	}{
		{0, false},
		{99, false},
		{100, true},
		{150, true},
	}
	for _, tt := range tests {
		h := chess.NewGameHistoryFrom(board, chess.White, tt.count)
		if got := IsFiftyMoveDraw(h); got != tt.want {
			t.Errorf("IsFiftyMoveDraw(count=%d) = %v; want %v", tt.count, got, tt.want)
		}
	}
}

func TestIsRepetitionDraw(t *testing.T) {
	board := chess.NewInitialBoard()
	h := chess.NewGameHistory(board, chess.White)

	testutil.AssertFalse(t, IsRepetitionDraw(board, chess.White, h), "first occurrence")

	h.Record(board.Snapshot(chess.Black), board, chess.White, false)
	testutil.AssertFalse(t, IsRepetitionDraw(board, chess.White, h), "second occurrence")

	h.Record(board.Snapshot(chess.Black), board, chess.White, false)
	testutil.AssertTrue(t, IsRepetitionDraw(board, chess.White, h), "third occurrence")
	testutil.AssertFalse(t, IsRepetitionDraw(board, chess.Black, h), "other side to move")
}

func TestDetectorsArePure(t *testing.T) {
	board := testutil.BoardFromMap(t, map[string]string{"A1": "K", "A8": "r", "B1": "P", "B2": "P"})
	before := board.Symbols()

	for i := 0; i < 3; i++ {
		testutil.AssertTrue(t, IsInCheck(board, chess.White))
		testutil.AssertTrue(t, IsCheckmate(board, chess.White))
		testutil.AssertFalse(t, IsStalemate(board, chess.White))
		testutil.AssertFalse(t, IsInsufficientMaterial(board))
	}
	testutil.AssertEqual(t, board.Symbols(), before)
}
