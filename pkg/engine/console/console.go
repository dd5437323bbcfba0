// Package console implements a line-oriented debugging front end (SPEC_FULL §11): print the
// board, play moves, reset the position, run perft, and ask for a synchronous evaluation/search --
// all without leaving the single-threaded model the UCI driver also uses.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/herohde/vice/pkg/engine"
	"github.com/herohde/vice/pkg/eval"
	"github.com/herohde/vice/pkg/search"
	"github.com/herohde/vice/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
type Driver struct {
	e  *engine.Engine
	in <-chan string

	out  chan<- string
	quit bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) <-chan string {
	out := make(chan string, 100)
	d := &Driver{e: e, in: in, out: out}
	go d.process(ctx)
	return out
}

func (d *Driver) process(ctx context.Context) {
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for !d.quit {
		line, ok := <-d.in
		if !ok {
			logw.Infof(ctx, "Input stream broken. Exiting")
			return
		}
		d.dispatch(ctx, line)
	}
	logw.Infof(ctx, "Driver closed")
}

func (d *Driver) dispatch(ctx context.Context, line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "reset", "r":
		// reset [<fenstring>] [moves ...]

		position := fen.Initial
		rest := args
		if len(args) >= 6 {
			position = strings.Join(args[0:6], " ")
			rest = args[6:]
		} else if len(args) > 0 && args[0] == "moves" {
			rest = args
		}

		if err := d.e.Reset(ctx, position); err != nil {
			d.out <- fmt.Sprintf("invalid position: %v", err)
			return
		}
		move := false
		for _, arg := range rest {
			if arg == "moves" {
				move = true
				continue
			}
			if !move {
				continue
			}
			if err := d.e.Move(arg); err != nil {
				d.out <- fmt.Sprintf("invalid move %q: %v", arg, err)
			}
		}
		d.printBoard()

	case "print", "p":
		d.printBoard()

	case "perft":
		depth := 4
		if len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				depth = n
			}
		}
		b := d.e.Board()
		d.out <- fmt.Sprintf("perft(%v) = %v", depth, b.Perft(depth))

	case "eval":
		d.out <- fmt.Sprintf("eval: %v", eval.Evaluate(d.e.Board()))

	case "go":
		var opt searchctl.Options
		if len(args) > 0 {
			if depth, err := strconv.Atoi(args[0]); err == nil {
				opt.DepthLimit = lang.Some(uint(depth))
			}
		}

		info := d.e.Go(ctx, opt, nil, func(info search.Info) {
			d.out <- fmt.Sprintf("depth=%v score=%v nodes=%v pv=%v", info.Depth, info.Score, info.Nodes, formatPV(info.PV))
		})
		if len(info.PV) > 0 {
			d.out <- fmt.Sprintf("bestmove %v", info.PV[0])
		} else {
			d.out <- "bestmove 0000"
		}

	case "quit", "exit", "q":
		d.quit = true

	case "":
		// ignore empty command

	default:
		// Assume a move if not a recognized command.
		if err := d.e.Move(cmd); err != nil {
			d.out <- fmt.Sprintf("invalid move: %q", cmd)
		} else {
			d.printBoard()
		}
	}
}

func formatPV(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	b := d.e.Board()

	d.out <- ""
	d.out <- files
	d.out <- horizontal

	var sb strings.Builder
	for rank := board.Rank8; rank >= board.Rank1; rank-- {
		sb.Reset()
		sb.WriteString(rank.String())
		sb.WriteString(vertical)
		for file := board.FileA; file <= board.FileH; file++ {
			sq := board.NewSquare(file, rank)
			sb.WriteString(printPiece(b.Squares[sq]))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen:    %v", d.e.Position())
	d.out <- fmt.Sprintf("hash:   0x%x", b.PosKey)
	if b.Result.Outcome != board.Undecided {
		d.out <- fmt.Sprintf("result: %v", b.Result)
	}
	d.out <- ""
}

func printPiece(p board.Piece) string {
	if p == board.Empty {
		return " "
	}
	return p.String()
}
