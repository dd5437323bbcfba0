package search

import (
	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/eval"
)

// Quiescence extends the search along capture lines past the nominal horizon (spec §4.8), so
// alphaBeta never evaluates a position with a capture hanging. It plays only captures and
// promotions (as GenerateCaptureMoves emits them), never extends checks, and never touches killers/history: those are move-ordering aids for
// the main search, not meaningful at a horizon that only ever considers captures.
func (s *Search) Quiescence(b *board.Board, alpha, beta eval.Score) eval.Score {
	s.pollNode()
	if s.Stopped() {
		return 0
	}

	if b.Ply != 0 && (b.IsRepetition() || b.FiftyMove >= 100) {
		return eval.Draw
	}
	if b.Ply > MaxDepth-1 {
		return eval.Evaluate(b)
	}

	standPat := eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	pv, _ := s.PV.Probe(b.PosKey)
	list := b.GenerateCaptureMoves()
	sm := orderCaptures(b, list, pv)

	for i := 0; i < sm.len(); i++ {
		m := sm.pickNext(i)
		if !b.MakeMove(m) {
			continue
		}

		score := -s.Quiescence(b, -beta, -alpha)
		b.TakeMove()

		if s.Stopped() {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
