package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// Reference counts from the chess programming wiki. Depths are kept low
// enough that no promotion occurs, since promotion always yields a queen.
var perftPositions = []struct {
	name      string
	placement string
	counts    []int64 // counts[i] is perft(i+1)
}{
	{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", []int64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", []int64{48, 2039}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8", []int64{14, 191, 2812}},
	{"king off home square", "k7/8/8/8/8/8/8/1K5R", []int64{17}},
}

func TestPerft(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			t.Parallel()
			for i, want := range pos.counts {
				depth := i + 1
				if depth >= 3 && testing.Short() {
					t.Skipf("perft(%d) skipped in short mode", depth)
				}
				board := testutil.BoardFromPlacement(t, pos.placement)
				if got := Perft(board, chess.White, depth); got != want {
					t.Errorf("Perft(%d) = %d; want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	if got := Perft(chess.NewInitialBoard(), chess.White, 0); got != 1 {
		t.Errorf("Perft(0) = %d; want 1", got)
	}
}

func TestDivide(t *testing.T) {
	results := Divide(chess.NewInitialBoard(), chess.White, 2)
	if len(results) != 20 {
		t.Fatalf("len(Divide) = %d; want 20", len(results))
	}

	var total int64
	for i, r := range results {
		if r.Nodes != 20 {
			t.Errorf("%s: nodes = %d; want 20", r.Move, r.Nodes)
		}
		if i > 0 && results[i-1].Move.String() >= r.Move.String() {
			t.Errorf("results not sorted at %s", r.Move)
		}
		total += r.Nodes
	}
	testutil.AssertEqual(t, total, int64(400))
}

func TestPerft_LeavesBoardUntouched(t *testing.T) {
	board := chess.NewInitialBoard()
	before := board.Symbols()
	Perft(board, chess.White, 2)
	testutil.AssertEqual(t, board.Symbols(), before)
}

func BenchmarkPerft(b *testing.B) {
	for _, pos := range perftPositions {
		board, err := testutil.ParsePlacement(pos.placement)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(pos.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Perft(board, chess.White, 2)
			}
		})
	}
}

func BenchmarkAnyPieceHasLegalMove(b *testing.B) {
	board := chess.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		AnyPieceHasLegalMove(board, chess.White)
	}
}
