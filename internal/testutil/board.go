package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustPosition parses an algebraic square such as "E2".
// It calls t.Fatal if the square is malformed.
func MustPosition(t testing.TB, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

// ParsePlacement is chess.ParsePlacement, kept here so benchmarks can build
// boards without a *testing.T.
func ParsePlacement(placement string) (*chess.Board, error) {
	return chess.ParsePlacement(placement)
}

// BoardFromPlacement builds a board from a FEN piece-placement field.
// It calls t.Fatal if the placement is malformed.
func BoardFromPlacement(t testing.TB, placement string) *chess.Board {
	t.Helper()
	b, err := chess.ParsePlacement(placement)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// BoardFromMap builds a board from square -> symbol pairs, the same shape
// Board.Symbols returns.
func BoardFromMap(t testing.TB, symbols map[string]string) *chess.Board {
	t.Helper()
	b, err := chess.BoardFromSymbols(symbols)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
