package eval

import "fmt"

// Score is a centipawn evaluation or search score, from the perspective named by its caller
// (the static evaluator returns it from the side-to-move's perspective; negamax propagates
// signs itself). Bounded well clear of int32 overflow under negation and PV-path arithmetic.
type Score int

const (
	// Mate is the score magnitude assigned to a checkmated position at ply 0; a mate found at
	// depth d is reported as Mate-d so shallower mates always outscore deeper ones.
	Mate Score = 29000
	// Infinite seeds alpha/beta at the root, 1000 above the largest mate score.
	Infinite Score = 30000
	// Draw is the score of a drawn position (repetition, fifty-move, insufficient material,
	// stalemate), independent of material imbalance.
	Draw Score = 0
)

// IsMateScore reports whether s denotes a forced mate (for either side).
func IsMateScore(s Score) bool {
	return s > Mate-1000 || s < -Mate+1000
}

func (s Score) String() string {
	return fmt.Sprintf("%v", int(s))
}
