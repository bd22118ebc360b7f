package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		color  chess.Color
		want   bool
	}{
		{"rook on open file", map[string]string{"E1": "K", "E8": "r"}, chess.White, true},
		{"rook blocked", map[string]string{"E1": "K", "E4": "N", "E8": "r"}, chess.White, false},
		{"bishop on diagonal", map[string]string{"E1": "K", "A5": "b"}, chess.White, true},
		{"bishop blocked by enemy piece", map[string]string{"E1": "K", "C3": "n", "A5": "b"}, chess.White, false},
		{"queen straight", map[string]string{"E1": "K", "H1": "q"}, chess.White, true},
		{"queen diagonal", map[string]string{"E1": "K", "H4": "q"}, chess.White, true},
		{"knight", map[string]string{"E1": "K", "F3": "n"}, chess.White, true},
		{"black pawn attacks down", map[string]string{"E4": "K", "D5": "p"}, chess.White, true},
		{"black pawn straight ahead", map[string]string{"E4": "K", "E5": "p"}, chess.White, false},
		{"black pawn behind", map[string]string{"E4": "K", "D3": "p"}, chess.White, false},
		{"white pawn attacks up", map[string]string{"E5": "k", "F4": "P"}, chess.Black, true},
		{"adjacent king", map[string]string{"E4": "K", "E5": "k"}, chess.White, true},
		{"king two files away", map[string]string{"E1": "K", "G1": "k"}, chess.White, false},
		{"own pieces never check", map[string]string{"E1": "K", "E8": "R", "F3": "N"}, chess.White, false},
		{"no king", map[string]string{"E8": "r"}, chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.BoardFromMap(t, tt.pieces)
			if got := IsInCheck(board, tt.color); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestIsSquareAttacked_EmptySquares(t *testing.T) {
	board := testutil.BoardFromMap(t, map[string]string{"E2": "P", "E1": "K", "B8": "n"})

	tests := []struct {
		square   string
		attacker chess.Color
		want     bool
	}{
		{"F3", chess.White, true},  // pawn diagonal, empty
		{"E3", chess.White, false}, // pawn push is not an attack
		{"D1", chess.White, true},  // king
		{"G1", chess.White, false}, // castling shape is not an attack
		{"C6", chess.Black, true},  // knight
		{"A6", chess.Black, true},
		{"B6", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := testutil.MustPosition(t, tt.square)
			if got := IsSquareAttacked(board, sq, tt.attacker); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v; want %v", tt.square, tt.attacker, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_InitialPosition(t *testing.T) {
	board := chess.NewInitialBoard()
	for _, color := range []chess.Color{chess.White, chess.Black} {
		if IsInCheck(board, color) {
			t.Errorf("IsInCheck(%v) = true in the initial position", color)
		}
	}
}
