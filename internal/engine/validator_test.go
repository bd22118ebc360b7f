package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestValidate_Failures(t *testing.T) {
	initial := chess.NewInitialBoard().Symbols()

	tests := []struct {
		name   string
		pieces map[string]string
		turn   chess.Color
		from   string
		to     string
		kind   error
		reason error
	}{
		{"empty source", initial, chess.White, "E4", "E5", errors.ErrPieceNotFound, nil},
		{"wrong turn", initial, chess.Black, "E2", "E4", errors.ErrRuleViolation, errors.ErrWrongTurn},
		{"wrong turn before same square", initial, chess.Black, "E2", "E2", errors.ErrRuleViolation, errors.ErrWrongTurn},
		{"same square", initial, chess.White, "E2", "E2", errors.ErrRuleViolation, errors.ErrSameSquare},
		{"friendly fire", initial, chess.White, "A1", "A2", errors.ErrRuleViolation, errors.ErrFriendlyFire},
		{"invalid shape", initial, chess.White, "B1", "B3", errors.ErrRuleViolation, errors.ErrInvalidPieceMove},
		{"pawn three squares", initial, chess.White, "E2", "E5", errors.ErrRuleViolation, errors.ErrInvalidPieceMove},
		{"rook through pawn", initial, chess.White, "A1", "A3", errors.ErrRuleViolation, errors.ErrPathBlocked},
		{"bishop through pawn", initial, chess.White, "C1", "E3", errors.ErrRuleViolation, errors.ErrPathBlocked},
		{
			"pawn two step blocked",
			map[string]string{"E1": "K", "E2": "P", "E3": "n", "E8": "k"},
			chess.White, "E2", "E4", errors.ErrRuleViolation, errors.ErrPathBlocked,
		},
		{
			"pinned bishop",
			map[string]string{"E1": "K", "E2": "B", "E8": "r", "A8": "k"},
			chess.White, "E2", "D3", errors.ErrIllegalMove, errors.ErrKingInCheckAfterMove,
		},
		{
			"king walks into check",
			map[string]string{"E1": "K", "D8": "r", "A8": "k"},
			chess.White, "E1", "D1", errors.ErrIllegalMove, errors.ErrKingInCheckAfterMove,
		},
		{
			"ignores check",
			map[string]string{"E1": "K", "A2": "P", "E8": "r", "A8": "k"},
			chess.White, "A2", "A3", errors.ErrIllegalMove, errors.ErrKingInCheckAfterMove,
		},
		{
			"diagonal pawn move without target",
			map[string]string{"E1": "K", "E5": "P", "D5": "p", "E8": "k"},
			chess.White, "E5", "D6", errors.ErrRuleViolation, errors.ErrInvalidPieceMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.BoardFromMap(t, tt.pieces)
			err := Validate(board, testutil.MustPosition(t, tt.from), testutil.MustPosition(t, tt.to), tt.turn)
			testutil.AssertError(t, err)
			testutil.AssertErrorIs(t, err, tt.kind)
			if tt.reason != nil {
				testutil.AssertErrorIs(t, err, tt.reason)
			}
		})
	}
}

func TestValidate_Castling(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		to     string
		reason error // nil means legal
	}{
		{"kingside", map[string]string{"E1": "K", "H1": "R", "A8": "k"}, "G1", nil},
		{"queenside", map[string]string{"E1": "K", "A1": "R", "H8": "k"}, "C1", nil},
		{"queenside with B1 attacked", map[string]string{"E1": "K", "A1": "R", "B8": "r", "H8": "k"}, "C1", nil},
		{"king moved", map[string]string{"H1": "R", "A8": "k"}, "G1", errors.ErrCastlingKingMoved},
		{"in check", map[string]string{"E1": "K", "H1": "R", "E8": "r", "A8": "k"}, "G1", errors.ErrCastlingInCheck},
		{"rook missing", map[string]string{"E1": "K", "A8": "k"}, "G1", errors.ErrCastlingRookNotFound},
		{"enemy knight in the corner", map[string]string{"E1": "K", "H1": "n", "A8": "k"}, "G1", errors.ErrCastlingRookNotFound},
		{"knight in the corner", map[string]string{"E1": "K", "H1": "N", "A8": "k"}, "G1", errors.ErrCastlingRookNotFound},
		{"rook moved", map[string]string{"E1": "K", "A8": "k"}, "G1", errors.ErrCastlingRookMoved},
		{"queenside path blocked at B1", map[string]string{"E1": "K", "A1": "R", "B1": "N", "H8": "k"}, "C1", errors.ErrCastlingPathBlocked},
		{"kingside path blocked at F1", map[string]string{"E1": "K", "H1": "R", "F1": "B", "A8": "k"}, "G1", errors.ErrCastlingPathBlocked},
		{"passes through attack", map[string]string{"E1": "K", "H1": "R", "F8": "r", "A8": "k"}, "G1", errors.ErrCastlingPathAttacked},
		{"pawn guards the pass-through", map[string]string{"E1": "K", "H1": "R", "G2": "p", "A8": "k"}, "G1", errors.ErrCastlingPathAttacked},
		{"lands in check", map[string]string{"E1": "K", "H1": "R", "G8": "r", "A8": "k"}, "G1", errors.ErrCastlingDestinationAttacked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.BoardFromMap(t, tt.pieces)
			switch tt.name {
			case "king moved":
				board.Place(testutil.MustPosition(t, "E1"), chess.W(chess.King).AfterMove())
			case "rook moved":
				board.Place(testutil.MustPosition(t, "H1"), chess.W(chess.Rook).AfterMove())
			}

			err := Validate(board, testutil.MustPosition(t, "E1"), testutil.MustPosition(t, tt.to), chess.White)
			if tt.reason == nil {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, tt.reason)
		})
	}
}

func TestValidate_CastlingKingOffHome(t *testing.T) {
	board := testutil.BoardFromPlacement(t, "k7/8/8/8/8/8/8/1K5R")
	sq := func(s string) chess.Position { return testutil.MustPosition(t, s) }

	err := Validate(board, sq("B1"), sq("D1"), chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, errors.ErrCastlingNotHome)

	var kingMoves []string
	for _, m := range LegalMoves(board, chess.White) {
		if m.From == sq("B1") {
			kingMoves = append(kingMoves, m.String())
		}
	}
	sort.Strings(kingMoves)
	testutil.AssertEqual(t, kingMoves, []string{"B1A1", "B1A2", "B1B2", "B1C1", "B1C2"})

	// A black king standing on E1 has no castling square either.
	board = testutil.BoardFromMap(t, map[string]string{"E1": "k", "H1": "r", "A8": "K"})
	err = Validate(board, sq("E1"), sq("G1"), chess.Black)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, errors.ErrCastlingNotHome)
}

func TestValidate_Black(t *testing.T) {
	board := chess.NewInitialBoard()
	e7, e5 := testutil.MustPosition(t, "E7"), testutil.MustPosition(t, "E5")

	testutil.AssertNoError(t, Validate(board, e7, e5, chess.Black))
	testutil.AssertErrorIs(t, Validate(board, e5, e7, chess.Black), errors.ErrPieceNotFound)
}

func TestValidate_EnPassant(t *testing.T) {
	board := testutil.BoardFromMap(t, map[string]string{"E1": "K", "E5": "P", "D7": "p", "E8": "k"})
	if _, err := board.Move(testutil.MustPosition(t, "D7"), testutil.MustPosition(t, "D5")); err != nil {
		t.Fatal(err)
	}

	err := Validate(board, testutil.MustPosition(t, "E5"), testutil.MustPosition(t, "D6"), chess.White)
	testutil.AssertNoError(t, err, "en-passant capture")

	err = Validate(board, testutil.MustPosition(t, "E5"), testutil.MustPosition(t, "F6"), chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrRuleViolation, errors.ErrInvalidPieceMove)
}

func TestValidate_EnPassantExposesKing(t *testing.T) {
	// Removing both pawns from the fifth rank opens it for the rook.
	board := testutil.BoardFromMap(t, map[string]string{"A5": "K", "E5": "P", "D7": "p", "H5": "r", "E8": "k"})
	if _, err := board.Move(testutil.MustPosition(t, "D7"), testutil.MustPosition(t, "D5")); err != nil {
		t.Fatal(err)
	}

	err := Validate(board, testutil.MustPosition(t, "E5"), testutil.MustPosition(t, "D6"), chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, errors.ErrKingInCheckAfterMove)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	board := testutil.BoardFromMap(t, map[string]string{"E1": "K", "H1": "R", "E2": "P", "A8": "k"})
	before := board.Symbols()

	for _, m := range [][2]string{{"E1", "G1"}, {"E2", "E4"}, {"H1", "H8"}} {
		testutil.AssertNoError(t, Validate(board, testutil.MustPosition(t, m[0]), testutil.MustPosition(t, m[1]), chess.White), m[0]+m[1])
	}

	testutil.AssertEqual(t, board.Symbols(), before)
	if _, ok := board.EnPassantTarget(); ok {
		t.Error("Validate set an en-passant target")
	}
}

func TestIsLegalMove(t *testing.T) {
	board := chess.NewInitialBoard()
	sq := func(s string) chess.Position { return testutil.MustPosition(t, s) }

	testutil.AssertTrue(t, IsLegalMove(board, sq("G1"), sq("F3"), chess.White), "knight jumps")
	testutil.AssertTrue(t, IsLegalMove(board, sq("E2"), sq("E4"), chess.White), "pawn two step")
	testutil.AssertFalse(t, IsLegalMove(board, sq("E1"), sq("G1"), chess.White), "castling through pieces")
	testutil.AssertFalse(t, IsLegalMove(board, sq("E5"), sq("E6"), chess.White), "empty square")
}
