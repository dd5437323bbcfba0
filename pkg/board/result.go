package board

// Outcome represents the decided/undecided status of a game.
type Outcome uint8

const (
	Undecided Outcome = iota
	Draw
	WhiteWins
	BlackWins
)

// Reason records why a game was adjudicated, for reporting and for the console/UCI front ends.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition
	FiftyMoveRule
	InsufficientMaterial
)

// Result represents the result of a game, if any.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

// Loss returns the Outcome recording the given color having lost.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}

func (r Result) String() string {
	switch r.Reason {
	case NoReason:
		return "undecided"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "draw by repetition"
	case FiftyMoveRule:
		return "draw by fifty-move rule"
	case InsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "?"
	}
}

// UpdateResult recomputes b.Result from the current position: checkmate/stalemate (by trial
// move generation), the fifty-move rule, repetition (spec §9's any-prior-occurrence variant)
// and insufficient material (spec §4.6 step 2). Called by Engine.Move/Engine.Reset after every
// position change so the console and UCI front ends can report game-over state (SPEC_FULL §11).
func (b *Board) UpdateResult() {
	list := b.GenerateAllMoves()
	hasLegalMove := false
	for _, m := range list.Moves {
		if b.MakeMove(m) {
			b.TakeMove()
			hasLegalMove = true
			break
		}
	}

	switch {
	case !hasLegalMove && b.IsInCheck(b.Side):
		b.Result = Result{Outcome: Loss(b.Side), Reason: Checkmate}
	case !hasLegalMove:
		b.Result = Result{Outcome: Draw, Reason: Stalemate}
	case b.FiftyMove >= 100:
		b.Result = Result{Outcome: Draw, Reason: FiftyMoveRule}
	case b.IsRepetition():
		b.Result = Result{Outcome: Draw, Reason: Repetition}
	case b.PieceCounts[WP] == 0 && b.PieceCounts[BP] == 0 && MaterialDraw(b):
		b.Result = Result{Outcome: Draw, Reason: InsufficientMaterial}
	default:
		b.Result = Result{Outcome: Undecided, Reason: NoReason}
	}
}

// MaterialDraw reproduces the insufficient-material lattice a VICE-lineage engine uses to
// short-circuit evaluation to a dead draw (spec §4.6 step 2, §9). Only meaningful once both
// sides have no pawns.
func MaterialDraw(b *Board) bool {
	wR, bR := b.PieceCounts[WR], b.PieceCounts[BR]
	wQ, bQ := b.PieceCounts[WQ], b.PieceCounts[BQ]
	wN, bN := b.PieceCounts[WN], b.PieceCounts[BN]
	wB, bB := b.PieceCounts[WB], b.PieceCounts[BB]

	if wR == 0 && bR == 0 && wQ == 0 && bQ == 0 {
		if wB == 0 && bB == 0 {
			if wN < 3 && bN < 3 {
				return true
			}
		} else if wN == 0 && bN == 0 {
			if abs(wB-bB) < 2 {
				return true
			}
		} else if (wN < 3 && wB == 0) || (wB == 1 && wN == 0) {
			if (bN < 3 && bB == 0) || (bB == 1 && bN == 0) {
				return true
			}
		}
	} else if wQ == 0 && bQ == 0 {
		if wR == 1 && bR == 1 {
			if (wN+wB) < 2 && (bN+bB) < 2 {
				return true
			}
		} else if wR == 1 && bR == 0 {
			if wN+wB == 0 && (bN+bB == 1 || bN+bB == 2) {
				return true
			}
		} else if bR == 1 && wR == 0 {
			if bN+bB == 0 && (wN+wB == 1 || wN+wB == 2) {
				return true
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
