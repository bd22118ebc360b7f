// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

const initialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var (
	depth     = flag.Int("depth", 3, "Search depth in plies")
	workers   = flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
	divide    = flag.Bool("divide", false, "Print the node count below each root move")
	placement = flag.String("placement", initialPlacement, "FEN piece-placement field of the start position")
	turn      = flag.String("turn", "w", "Side to move: w or b")
	show      = flag.Bool("show", false, "Print the start position")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)
