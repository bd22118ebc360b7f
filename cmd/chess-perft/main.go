// chess-perft counts the nodes of the legal move tree from a position,
// spreading root moves over a worker pool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-perft version %s\n", programVersion)
		os.Exit(0)
	}

	opts := options{
		placement: *placement,
		turn:      *turn,
		depth:     *depth,
		workers:   *workers,
		divide:    *divide,
		show:      *show,
	}
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "chess-perft: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	placement string
	turn      string
	depth     int
	workers   int
	divide    bool
	show      bool
}

func run(w io.Writer, opts options) error {
	board, err := chess.ParsePlacement(opts.placement)
	if err != nil {
		return err
	}
	side, err := parseTurn(opts.turn)
	if err != nil {
		return err
	}
	if opts.depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", opts.depth)
	}

	if opts.show {
		fmt.Fprint(w, output.RenderBoard(board))
		fmt.Fprintf(w, "%s to move\n\n", side)
	}

	start := time.Now()
	results := worker.Divide(board, side, opts.depth, opts.workers)
	elapsed := time.Since(start)

	var total int64
	for _, r := range results {
		total += r.Nodes
		if opts.divide {
			fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
		}
	}
	if opts.divide {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "perft(%d) = %d\n", opts.depth, total)
	fmt.Fprintf(w, "moves: %d, time: %v\n", len(results), elapsed.Round(time.Millisecond))
	return nil
}

func parseTurn(s string) (chess.Color, error) {
	switch s {
	case "w", "white", "WHITE":
		return chess.White, nil
	case "b", "black", "BLACK":
		return chess.Black, nil
	}
	return 0, errors.Wrapf(errors.ErrInvalidPosition, "side to move %q", s)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move tree nodes to the given depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
