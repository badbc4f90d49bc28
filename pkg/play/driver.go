package play

import (
	"context"
	"fmt"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/mjhoy/chess/pkg/notation"
	"github.com/mjhoy/chess/pkg/render"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Driver runs the interactive `play` loop: it reads one move per line from
// `in`, applies it against the current position if it resolves to exactly
// one legal move, and writes the resulting board (or an error) to its out
// channel. The line "q" exits. A line that fails to parse or does not match
// a legal move leaves the position unchanged.
type Driver struct {
	iox.AsyncCloser

	state board.State
	out   chan<- string
}

// NewDriver starts the driver's processing goroutine against the given
// starting state and returns it along with the channel its output appears
// on.
func NewDriver(ctx context.Context, state board.State, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		state:       state,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "input stream closed, exiting")
				return
			}

			if line == "q" {
				return
			}

			if err := d.applyMove(line); err != nil {
				d.out <- fmt.Sprintf("error: %v", err)
				continue
			}
			d.printBoard()

		case <-d.Closed():
			return
		}
	}
}

func (d *Driver) applyMove(line string) error {
	desc, err := notation.ParseMove(line)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", line, err)
	}

	m, ok := notation.Match(desc, board.GenerateMoves(d.state))
	if !ok {
		return fmt.Errorf("%q does not match exactly one legal move", line)
	}

	d.state = m.Next
	return nil
}

func (d *Driver) printBoard() {
	d.out <- ""
	d.out <- render.Board(d.state.Board)
	d.out <- fmt.Sprintf("%v to move", d.state.Turn)
	d.out <- ""
}
