// Package engine wires the board, search and searchctl packages into the single stateful
// object the UCI (and console) front ends drive (spec §5/§10). Unlike the teacher's Engine,
// which forks a board per search and hands it to a goroutine-based Launcher, this Engine owns
// one board and one Search and runs them synchronously on the caller's goroutine: there is
// exactly one logical task, matching spec §5's single-threaded cooperative model.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/herohde/vice/pkg/search"
	"github.com/herohde/vice/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 0, 0)

// Options are engine-wide defaults, overridable per `go` command.
type Options struct {
	// Depth is the default search depth limit. Zero means no limit (search to search.MaxDepth).
	Depth uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.Depth)
}

// Engine encapsulates game-playing logic: the current board and the search state that
// persists across moves within one game (PV table, killers, history).
type Engine struct {
	name, author string
	opts         Options

	b *board.Board
	s *search.Search
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine at the standard initial position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, s: search.NewSearch()}
	for _, fn := range opts {
		fn(e)
	}

	if err := e.Reset(ctx, fen.Initial); err != nil {
		logw.Exitf(ctx, "invalid initial position: %v", err)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version, as reported by UCI `id name`.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author, as reported by UCI `id author`.
func (e *Engine) Author() string {
	return e.author
}

// Board returns the current board. Callers must not retain it across a Move/Reset/Go call.
func (e *Engine) Board() *board.Board {
	return e.b
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	return fen.Encode(e.b)
}

// Reset installs position (FEN) as the current position and clears PV table, killers and
// history -- the `ucinewgame` behavior of spec §6.
func (e *Engine) Reset(ctx context.Context, position string) error {
	b, err := fen.Decode(position)
	if err != nil {
		return err
	}
	b.UpdateResult()
	e.b = b
	e.s.Reset()

	logw.Debugf(ctx, "Reset to %v", position)
	return nil
}

// Move applies a single UCI move string (e.g. "e2e4", "e7e8q") to the current position.
// An unparseable or illegal move is reported as an error; per spec §7, callers applying a
// sequence of `position ... moves` should log and otherwise ignore such an error rather than
// abort the whole command.
func (e *Engine) Move(uciMove string) error {
	from, to, promo, err := board.ParseUCI(uciMove)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", uciMove, err)
	}

	m, ok := e.b.FindMove(from, to, promo)
	if !ok {
		return fmt.Errorf("illegal move: %v", uciMove)
	}
	if !e.b.MakeMove(m) {
		return fmt.Errorf("illegal move: %v", uciMove)
	}
	e.b.UpdateResult()
	return nil
}

// Go runs iterative deepening to completion or until stop reports true, emitting info after
// every completed iteration. It returns the last completed (or partially-completed root,
// per spec §4.9) iteration. stop may be nil, meaning only opt's own limits apply.
func (e *Engine) Go(ctx context.Context, opt searchctl.Options, stop func() bool, emit func(search.Info)) search.Info {
	depth := opt.Depth()
	if depth == 0 {
		depth = int(e.opts.Depth)
	}

	ctrl := searchctl.New(opt, time.Now())
	base := ctrl.Stopper(func() uint64 { return e.s.Nodes })
	e.s.Stopper = func() bool {
		return base() || (stop != nil && stop())
	}

	logw.Debugf(ctx, "Go %v, opt=%v", e.Position(), opt)

	info := e.s.Root(e.b, depth, emit)

	logw.Debugf(ctx, "Searched %v: depth=%v score=%v nodes=%v pv=%v", e.Position(), info.Depth, info.Score, info.Nodes, info.PV)
	return info
}
