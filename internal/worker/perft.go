package worker

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PerftFunc counts the move tree below the item's root move.
func PerftFunc(item WorkItem) ProcessResult {
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.PerftAfter(item.Board, item.Turn, item.Move, item.Depth),
	}
}

// Divide is engine.Divide with the root moves spread over workers. Results
// are sorted by move.
func Divide(board *chess.Board, turn chess.Color, depth, workers int) []engine.DivideResult {
	if depth < 1 {
		return nil
	}
	moves := engine.LegalMoves(board, turn)
	items := make([]WorkItem, len(moves))
	for i, m := range moves {
		items[i] = WorkItem{Board: board, Turn: turn, Move: m, Depth: depth - 1}
	}
	pool := NewPoolWithOptions(PerftFunc, WithWorkers(workers), WithBufferSize(len(moves)+1))

	results := make([]engine.DivideResult, 0, len(moves))
	for _, r := range pool.Run(items) {
		results = append(results, engine.DivideResult{Move: r.Move, Nodes: r.Nodes})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	return results
}

// Perft is engine.Perft with the root moves spread over workers.
func Perft(board *chess.Board, turn chess.Color, depth, workers int) int64 {
	if depth < 1 {
		return 1
	}
	var total int64
	for _, r := range Divide(board, turn, depth, workers) {
		total += r.Nodes
	}
	return total
}
