package engine

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Depth 0 is the position itself.
func Perft(board *chess.Board, turn chess.Color, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, turn)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := board.Clone()
		if _, err := next.Move(m.From, m.To); err != nil {
			continue
		}
		nodes += Perft(next, turn.Opposite(), depth-1)
	}
	return nodes
}

// DivideResult is the perft count below one root move.
type DivideResult struct {
	Move  Move
	Nodes int64
}

// Divide runs Perft to depth-1 below each legal root move, sorted by move.
func Divide(board *chess.Board, turn chess.Color, depth int) []DivideResult {
	moves := LegalMoves(board, turn)
	results := make([]DivideResult, 0, len(moves))
	for _, m := range moves {
		results = append(results, DivideResult{Move: m, Nodes: PerftAfter(board, turn, m, depth-1)})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	return results
}

// PerftAfter plays m on a copy of board and counts the tree of the given
// depth below it. It is the unit of work the perft CLI spreads over workers.
func PerftAfter(board *chess.Board, turn chess.Color, m Move, depth int) int64 {
	next := board.Clone()
	if _, err := next.Move(m.From, m.To); err != nil {
		return 0
	}
	return Perft(next, turn.Opposite(), depth)
}
