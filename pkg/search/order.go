package search

import "github.com/herohde/vice/pkg/board"

const (
	captureBonus  = 1000000
	pvMoveBonus   = 2000000
	enPassantBase = 105
	killerPrimary = 900000
	killerSecond  = 800000
)

// mvvLva[victim][attacker] ranks a capture by the value of what's captured, most valuable
// victim first, breaking ties by the least valuable attacker first (spec §4.4).
var mvvLva [board.NumPieces][board.NumPieces]int

func init() {
	for victim := board.Piece(0); victim < board.Offboard; victim++ {
		for attacker := board.Piece(0); attacker < board.Offboard; attacker++ {
			mvvLva[victim][attacker] = victim.Value()*10 - attacker.Value()/100
		}
	}
}

// scoredMoves pairs a pseudo-legal move list with the ordering score assigned to each move,
// so PickNext can selection-sort in place without recomputing scores.
type scoredMoves struct {
	moves  []board.Move
	scores []int
}

// orderMoves scores every move in list per spec §4.4/§4.8: a PV move (if present) wins
// outright; captures and en-passant use MVV-LVA; killer quiets and history-scored quiets
// follow. b must be the position the moves were generated from (not yet advanced), so the
// mover's piece can be read straight off the from-square.
func (s *Search) orderMoves(b *board.Board, list *board.MoveList, pv board.Move, ply int) *scoredMoves {
	sm := &scoredMoves{moves: list.Moves, scores: make([]int, len(list.Moves))}

	for i, m := range sm.moves {
		attacker := b.Squares[m.From()]
		switch {
		case pv != board.NoMove && m == pv:
			sm.scores[i] = pvMoveBonus
		case m.IsEnPassant():
			sm.scores[i] = enPassantBase + captureBonus
		case m.IsCapture():
			sm.scores[i] = mvvLva[m.Captured()][attacker] + captureBonus
		case ply < MaxDepth && m == s.Killers[0][ply]:
			sm.scores[i] = killerPrimary
		case ply < MaxDepth && m == s.Killers[1][ply]:
			sm.scores[i] = killerSecond
		default:
			sm.scores[i] = s.History[attacker][m.To()]
		}
	}
	return sm
}

// orderCaptures scores a captures-only list: no killers/history apply, since quiescence never
// plays quiets.
func orderCaptures(b *board.Board, list *board.MoveList, pv board.Move) *scoredMoves {
	sm := &scoredMoves{moves: list.Moves, scores: make([]int, len(list.Moves))}
	for i, m := range sm.moves {
		attacker := b.Squares[m.From()]
		switch {
		case pv != board.NoMove && m == pv:
			sm.scores[i] = pvMoveBonus
		case m.IsEnPassant():
			sm.scores[i] = enPassantBase + captureBonus
		default:
			sm.scores[i] = mvvLva[m.Captured()][attacker] + captureBonus
		}
	}
	return sm
}

// pickNext performs one step of a selection sort: it finds the best-scored move at or after
// i, swaps it into position i, and returns it. This is spec §4.8's PickNextMove.
func (sm *scoredMoves) pickNext(i int) board.Move {
	best := i
	for j := i + 1; j < len(sm.moves); j++ {
		if sm.scores[j] > sm.scores[best] {
			best = j
		}
	}
	sm.moves[i], sm.moves[best] = sm.moves[best], sm.moves[i]
	sm.scores[i], sm.scores[best] = sm.scores[best], sm.scores[i]
	return sm.moves[i]
}

func (sm *scoredMoves) len() int {
	return len(sm.moves)
}
