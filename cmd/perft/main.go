// Command perft is the move generator's primary test harness: it prints
// a per-root-move node count at a given depth from a given position,
// verifiable against a reference engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	chess "github.com/kajarenc/bitmctschess"
)

func main() {
	parallel := flag.Bool("parallel", false, "split root moves across worker goroutines")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: perft [-parallel] <depth> <fen>")
		os.Exit(1)
	}

	var depth int
	if _, err := fmt.Sscanf(args[0], "%d", &depth); err != nil || depth < 0 {
		fmt.Fprintf(os.Stderr, "chess: invalid depth %q\n", args[0])
		os.Exit(1)
	}

	board, err := chess.FromFEN(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	entries := chess.PerftDivide(board, depth)

	var total uint64
	for _, e := range entries {
		fmt.Printf("%s %d\n", e.Move, e.Count)
		total += e.Count
	}
	fmt.Println()
	fmt.Println(total)

	if *parallel {
		if parallelTotal := chess.PerftParallel(board, depth); parallelTotal != total {
			color.New(color.FgRed, color.Bold).Fprintf(os.Stderr,
				"parallel total %d does not match divide total %d\n", parallelTotal, total)
			os.Exit(1)
		}
	}
}
