// Package search implements the iterative-deepening negamax alpha-beta search (spec §4.8):
// null-move pruning, quiescence, MVV-LVA/killer/history move ordering and principal-variation
// extraction. It is driven synchronously from the single engine goroutine (see spec §5) --
// there is no concurrency inside this package, and none of its state is safe to share across
// goroutines.
package search

import (
	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/eval"
)

// MaxDepth bounds search recursion (spec §9): both alphaBeta and quiescence share the same
// ply counter and stop descending past it.
const MaxDepth = 32

// NodePollInterval is how often (in visited nodes) the search checks its Stopper for a
// deadline or user-requested stop, per spec §4.8/§4.9.
const NodePollInterval = 65536

// Search holds everything that must outlive a single `go` command: the PV table, killer and
// history move-ordering tables, and running node/fail-high counters. `ucinewgame` clears it
// via Reset; a fresh `go` only resets the per-search counters via NewIteration.
type Search struct {
	PV      *PVTable
	Killers [2][MaxDepth]board.Move
	History [board.NumPieces][120]int

	Nodes    uint64
	FH, FHF  uint64 // fail-high / first-move fail-high, for move-ordering diagnostics
	stopped  bool
	Stopper  func() bool // polled every NodePollInterval nodes; true means stop searching now
}

// NewSearch returns a Search with a fresh PV table.
func NewSearch() *Search {
	return &Search{PV: NewPVTable()}
}

// Reset clears the PV table, killers and history. Called on `ucinewgame` (spec §6).
func (s *Search) Reset() {
	s.PV.Clear()
	s.Killers = [2][MaxDepth]board.Move{}
	s.History = [board.NumPieces][120]int{}
}

// NewIteration resets the per-search counters before a `go` command. PV, killers and history
// survive across iterations and across searches within the same game (spec §3 Lifecycle).
func (s *Search) NewIteration() {
	s.Nodes = 0
	s.FH = 0
	s.FHF = 0
	s.stopped = false
}

// Stopped reports whether the search has observed a stop condition (deadline or `stop`/`quit`)
// at the last node-count poll.
func (s *Search) Stopped() bool {
	return s.stopped
}

// pollNode increments the node counter and, every NodePollInterval nodes, checks Stopper.
func (s *Search) pollNode() {
	s.Nodes++
	if s.Stopper != nil && s.Nodes%NodePollInterval == 0 && s.Stopper() {
		s.stopped = true
	}
}

// clamp keeps scores within the representable mate-score window.
func clamp(score eval.Score) eval.Score {
	if score > eval.Infinite {
		return eval.Infinite
	}
	if score < -eval.Infinite {
		return -eval.Infinite
	}
	return score
}
