// chess is a command-line driver for the rules engine core: it loads a
// starting position, optionally applies a sequence of algebraic moves, and
// either prints the resulting board or enters an interactive play loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/mjhoy/chess/pkg/board/fen"
	"github.com/mjhoy/chess/pkg/notation"
	"github.com/mjhoy/chess/pkg/play"
	"github.com/mjhoy/chess/pkg/render"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	initial     = flag.String("initial", "", "Start position as FEN (default: standard opening)")
	moves       = flag.String("moves", "", "Space-separated algebraic moves to apply before anything else")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: chess [options] [play]

chess is a rules engine for standard chess: legal move generation, FEN and
algebraic notation, castling and en passant. No search, no evaluation.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()
	flag.Parse()

	if *showVersion {
		fmt.Printf("chess %v\n", version)
		return
	}

	pos := fen.Initial
	if *initial != "" {
		pos = *initial
	}

	state, err := fen.Decode(pos)
	if err != nil {
		logw.Exitf(ctx, "invalid start position %q: %v", pos, err)
	}

	if *moves != "" {
		state, err = applyMoves(state, *moves)
		if err != nil {
			logw.Exitf(ctx, "%v", err)
		}
	}

	if flag.Arg(0) == "play" {
		in := play.ReadStdinLines(ctx)
		driver, out := play.NewDriver(ctx, state, in)
		go play.WriteStdoutLines(ctx, out)
		<-driver.Closed()
		return
	}

	fmt.Println(render.Board(state.Board))
}

func applyMoves(state board.State, line string) (board.State, error) {
	descs, err := notation.ParseMoves(line)
	if err != nil {
		return state, fmt.Errorf("invalid moves %q: %w", line, err)
	}

	for _, d := range descs {
		m, ok := notation.Match(d, board.GenerateMoves(state))
		if !ok {
			return state, fmt.Errorf("move %v does not resolve to a unique legal move", d)
		}
		state = m.Next
	}
	return state, nil
}
