// Command chessbot applies one bot-chosen move to a position supplied as
// FEN and prints the resulting move and board.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	chess "github.com/kajarenc/bitmctschess"
	"github.com/kajarenc/bitmctschess/config"
)

func main() {
	fen := flag.String("fen", "", "FEN of the position to move from (required)")
	botName := flag.String("bot", "negamax", "bot to use: negamax or mcts")
	depth := flag.Int("depth", 0, "negamax search depth (0 = config default)")
	think := flag.Duration("time", 0, "mcts time budget, e.g. 2s (0 = config default)")
	cfgPath := flag.String("config", "", "path to a YAML engine config overriding defaults")
	svgPath := flag.String("svg", "", "write an SVG diagram of the resulting board to this path")
	flag.Parse()

	if *fen == "" {
		fmt.Fprintln(os.Stderr, "usage: chessbot -fen <FEN> [-bot negamax|mcts] [-depth N] [-time 2s] [-svg <path>]")
		os.Exit(1)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *depth > 0 {
		cfg.Negamax.Depth = *depth
	}
	if *think > 0 {
		cfg.MCTS.BudgetMillis = think.Milliseconds()
	}

	board, err := chess.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var bot chess.Bot
	switch *botName {
	case "negamax":
		bot = chess.NegamaxBot{Depth: cfg.Negamax.Depth}
	case "mcts":
		bot = chess.MCTSBot{Budget: cfg.Budget(), C: cfg.MCTS.ExploreConstant, Seed: cfg.MCTS.Seed}
	default:
		fmt.Fprintf(os.Stderr, "chess: unknown bot %q\n", *botName)
		os.Exit(1)
	}

	started := time.Now()
	move, ok := bot.ChooseMove(board)
	if !ok {
		fmt.Println("no legal moves: game over")
		return
	}

	color.New(color.FgGreen, color.Bold).Printf("%s", move)
	fmt.Printf(" (%s elapsed)\n", time.Since(started).Round(time.Millisecond))
	next := board.ApplyMove(move)
	fmt.Print(next)

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		chess.WriteSVG(f, next)
	}
}
