// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/herohde/vice/pkg/board/fen"
	"github.com/herohde/vice/pkg/engine"
	"github.com/herohde/vice/pkg/eval"
	"github.com/herohde/vice/pkg/search"
	"github.com/herohde/vice/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an engine (spec §6). Unlike the teacher's Driver, which
// spins up a goroutine per search and communicates its progress back over a "ponder" channel,
// this Driver runs `go` synchronously on its own goroutine: the single suspension point is
// reading a line from in (spec §5), fed here by a dedicated line-reading goroutine the caller
// owns. While a search is in flight, the driver peeks in non-blockingly -- at the search's own
// node-count poll -- for "stop" or "quit"; any other input arriving mid-search is not
// actionable under this protocol and is dropped, matching how GUIs actually behave (they do
// not send anything but stop/ponderhit/quit while a search is outstanding).
type Driver struct {
	e  *engine.Engine
	in <-chan string
	out chan<- string

	lastPosition string // last `position` line (empty if none yet)
	quit         bool
}

// NewDriver starts a Driver reading commands from in and writing protocol replies to the
// returned channel. The driver closes the output channel and returns once in is closed, a
// "quit" command is processed, or the input stream breaks.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) <-chan string {
	out := make(chan string, 100)
	d := &Driver{e: e, in: in, out: out}
	go d.process(ctx)
	return out
}

func (d *Driver) process(ctx context.Context) {
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "uciok"

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
	case "isready":
		d.out <- "readyok"

	case "debug", "setoption", "register", "ponderhit":
		// Accepted but not meaningful for this engine: no runtime-configurable options,
		// no registration requirement, no pondering.

	case "ucinewgame":
		if err := d.e.Reset(ctx, fen.Initial); err != nil {
			logw.Errorf(ctx, "ucinewgame reset failed: %v", err)
		}
		d.lastPosition = ""

	case "position":
		d.position(ctx, line, args)

	case "go":
		d.goCommand(ctx, args)

	case "stop":
		// Handled by the in-flight `go`'s Stopper poll; nothing to do once `go` has returned.
		// A `stop` with no search active is simply ignored, per spec §7.

	case "quit":
		d.quit = true

	default:
		logw.Debugf(ctx, "Unknown command %q: ignored", cmd)
	}
}

// position implements `position [startpos | fen <FEN>] [moves <m1> <m2> ...]` (spec §6). As
// an optimization (the teacher's idiom), a `position` line that is a pure continuation of the
// previous one only replays the newly appended moves instead of resetting the whole board.
func (d *Driver) position(ctx context.Context, line string, args []string) {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		rest := strings.Fields(strings.TrimPrefix(line, d.lastPosition))
		for _, mv := range rest {
			if mv == "moves" {
				continue
			}
			if err := d.e.Move(mv); err != nil {
				logw.Debugf(ctx, "Ignoring illegal position move %q: %v", mv, err)
			}
		}
		d.lastPosition = line
		return
	}

	position := fen.Initial
	rest := args
	switch {
	case len(args) > 0 && args[0] == "fen":
		rest = args[1:]
		i := 0
		for i < len(rest) && rest[i] != "moves" {
			i++
		}
		position = strings.Join(rest[:i], " ")
		rest = rest[i:]
	case len(args) > 0 && args[0] == "startpos":
		rest = args[1:]
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "Malformed FEN %q: %v", position, err)
		d.lastPosition = ""
		return
	}

	move := false
	for _, mv := range rest {
		if mv == "moves" {
			move = true
			continue
		}
		if !move {
			continue
		}
		if err := d.e.Move(mv); err != nil {
			logw.Debugf(ctx, "Ignoring illegal position move %q: %v", mv, err)
		}
	}
	d.lastPosition = line
}

// goCommand implements `go [depth N] [nodes N] [movetime MS] ...` (spec §6). Clock-derived
// tokens (wtime/btime/winc/binc/movestogo) and `ponder`/`searchmoves`/`mate` are accepted and
// their arguments consumed so parsing stays in sync, but otherwise ignored: this engine has no
// time-control model beyond an explicit movetime/depth/nodes budget (spec §4.9).
func (d *Driver) goCommand(ctx context.Context, args []string) {
	var opt searchctl.Options

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth", "nodes", "movetime", "wtime", "btime", "winc", "binc", "movestogo", "mate":
			cmd := args[i]
			i++
			if i >= len(args) {
				logw.Debugf(ctx, "Missing argument for go %v: ignored", cmd)
				break
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				logw.Debugf(ctx, "Invalid argument for go %v: %v: ignored", cmd, err)
				break
			}

			switch cmd {
			case "depth":
				opt.DepthLimit = lang.Some(uint(n))
			case "nodes":
				opt.NodesLimit = lang.Some(uint64(n))
			case "movetime":
				opt.MoveTime = lang.Some(time.Duration(n) * time.Millisecond)
			}

		case "ponder", "infinite":
			// Ponder is not implemented; infinite is the default (no limits set above).

		default:
			// searchmoves and its move list, or any other unrecognized token: ignore.
		}
	}

	stopped := false
	stopFn := func() bool {
		if stopped {
			return true
		}
		select {
		case line, ok := <-d.in:
			if !ok {
				stopped = true
				d.quit = true
				return true
			}
			if fields := strings.Fields(line); len(fields) > 0 {
				cmd := strings.ToLower(fields[0])
				if cmd == "stop" {
					stopped = true
				} else if cmd == "quit" {
					stopped = true
					d.quit = true
				}
			}
			// Anything else arriving mid-search is dropped; see Driver's doc comment.
		default:
		}
		return stopped
	}

	info := d.e.Go(ctx, opt, stopFn, func(info search.Info) {
		d.out <- formatInfo(info)
	})

	if len(info.PV) == 0 {
		d.out <- "bestmove 0000"
		return
	}
	d.out <- fmt.Sprintf("bestmove %v", info.PV[0])
}

func formatInfo(info search.Info) string {
	parts := []string{"info", fmt.Sprintf("depth %v", info.Depth), fmt.Sprintf("score %v", formatScore(info.Score))}
	parts = append(parts, fmt.Sprintf("nodes %v", info.Nodes))

	ms := info.Time.Milliseconds()
	parts = append(parts, fmt.Sprintf("time %v", ms))
	if ms > 0 {
		nps := uint64(info.Nodes) * uint64(time.Second/time.Millisecond) / uint64(ms)
		parts = append(parts, fmt.Sprintf("nps %v", nps))
	}

	if len(info.PV) > 0 {
		moves := make([]string, len(info.PV))
		for i, m := range info.PV {
			moves[i] = m.String()
		}
		parts = append(parts, "pv "+strings.Join(moves, " "))
	}
	return strings.Join(parts, " ")
}

// formatScore renders a score as `cp <centipawns>` or `mate <N>` (spec §6): N is signed, in
// moves (not plies), from the side-to-move's perspective.
func formatScore(s eval.Score) string {
	if !eval.IsMateScore(s) {
		return fmt.Sprintf("cp %v", int(s))
	}

	sign := 1
	plies := int(eval.Mate - s)
	if s < 0 {
		sign = -1
		plies = int(eval.Mate + s)
	}
	return fmt.Sprintf("mate %v", sign*((plies+1)/2))
}
