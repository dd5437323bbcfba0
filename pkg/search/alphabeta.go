package search

import (
	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/eval"
)

// nullMoveMaterialThreshold is the mover's own material above which null-move pruning is
// attempted (spec §4.8): below it, zugzwang makes the null-move heuristic unreliable.
const nullMoveMaterialThreshold = 50200

// nullMoveMinDepth and nullMoveReduction implement spec §4.8's null-move rule: at depth >= 4,
// search the null move at depth-R with a null window. R=4 is unusually aggressive for this
// family of engines (spec §9 flags it as a likely tuning target) but is preserved as specified.
const (
	nullMoveMinDepth  = 4
	nullMoveReduction = 4
)

// AlphaBeta is the negamax-form alpha-beta search of spec §4.8, called once per ply by
// iterative deepening (via Root) and recursively by itself and Quiescence. allowNull disables
// a second consecutive null move search (it is always false immediately after a null move).
func (s *Search) AlphaBeta(b *board.Board, alpha, beta eval.Score, depth int, allowNull bool) eval.Score {
	if depth <= 0 {
		return s.Quiescence(b, alpha, beta)
	}

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

	inCheck := b.IsInCheck(b.Side)
	if inCheck {
		depth++
	}

	if allowNull && !inCheck && b.Ply != 0 && b.Material[b.Side] > nullMoveMaterialThreshold && depth >= nullMoveMinDepth {
		b.MakeNullMove()
		score := -s.AlphaBeta(b, -beta, -beta+1, depth-nullMoveReduction, false)
		b.TakeNullMove()

		if s.Stopped() {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	pv, _ := s.PV.Probe(b.PosKey)
	list := b.GenerateAllMoves()
	sm := s.orderMoves(b, list, pv, b.Ply)

	hasLegalMove := false
	bestMove := board.NoMove
	ply := b.Ply

	for i := 0; i < sm.len(); i++ {
		m := sm.pickNext(i)
		if !b.MakeMove(m) {
			continue
		}
		hasLegalMove = true

		score := -s.AlphaBeta(b, -beta, -alpha, depth-1, true)
		b.TakeMove()

		if s.Stopped() {
			return 0
		}

		if score >= beta {
			s.FH++
			if i == 0 {
				s.FHF++
			}
			if !m.IsCapture() {
				s.Killers[1][ply] = s.Killers[0][ply]
				s.Killers[0][ply] = m
			}
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			if !m.IsCapture() {
				s.History[b.Squares[m.From()]][m.To()] += depth
			}
			s.PV.Store(b.PosKey, bestMove)
		}
	}

	if !hasLegalMove {
		if inCheck {
			return -eval.Mate + eval.Score(ply)
		}
		return eval.Draw
	}

	return alpha
}
