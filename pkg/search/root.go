package search

import (
	"time"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/eval"
)

// Info is the result of one completed iterative-deepening pass, emitted to the UCI front end
// as a single `info depth ...` line (spec §4.8/§6).
type Info struct {
	Depth int
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// Root runs iterative deepening on b from depth 1 up to maxDepth (MaxDepth if maxDepth is
// <= 0 or exceeds it), invoking emit after every completed iteration (spec §4.8). It returns
// the last completed iteration's Info -- or, if even depth 1 was interrupted, whatever partial
// root move the PV table captured before the stop (spec §4.9/§5).
func (s *Search) Root(b *board.Board, maxDepth int, emit func(Info)) Info {
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	b.Ply = 0
	s.NewIteration()
	start := time.Now()

	var last Info
	for depth := 1; depth <= maxDepth; depth++ {
		score := s.AlphaBeta(b, -eval.Infinite, eval.Infinite, depth, true)
		elapsed := time.Since(start)

		if s.Stopped() {
			if depth == 1 {
				last = Info{Depth: depth, Nodes: s.Nodes, Time: elapsed, PV: s.PV.GetLine(b, depth)}
			}
			break
		}

		last = Info{
			Depth: depth,
			Score: score,
			Nodes: s.Nodes,
			Time:  elapsed,
			PV:    s.PV.GetLine(b, depth),
		}
		if emit != nil {
			emit(last)
		}

		if eval.IsMateScore(score) {
			break
		}
	}
	return last
}
