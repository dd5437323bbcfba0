package eval

import "github.com/herohde/vice/pkg/board"

// Piece-square tables, one centipawn bonus per square, indexed [rank][file] with rank 0 = 1st
// rank from the table owner's own side. Black's tables are the same array read with the rank
// mirrored (7-rank), per spec §4.6.4. Queens reuse the rook table. Values are the standard
// "simplified evaluation" tables common to hobby engines in this lineage, not tuned for this
// engine specifically.
var (
	pawnPST = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	knightPST = [8][8]int{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	}
	bishopPST = [8][8]int{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	}
	rookPST = [8][8]int{
		{0, 0, 0, 5, 5, 0, 0, 0},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	kingOpeningPST = [8][8]int{
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	}
	kingEndgamePST = [8][8]int{
		{-50, -30, -30, -30, -30, -30, -30, -50},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -20, -10, 0, 0, -10, -20, -30},
		{-50, -40, -30, -20, -20, -30, -40, -50},
	}
)

// pstValue looks up the piece-square bonus for p standing on sq, mirroring black's view of
// the table vertically so both colors share one set of tables.
func pstValue(table *[8][8]int, c board.Color, sq board.Square) int {
	r, f := int(sq.Rank()), int(sq.File())
	if c == board.Black {
		r = 7 - r
	}
	return table[r][f]
}

// EndgameMaterial is the material threshold below which a side's king uses the endgame
// piece-square table instead of the opening one (spec §4.6.4): one rook, two knights, two
// pawns and the king itself.
var EndgameMaterial = board.WR.Value() + 2*board.WN.Value() + 2*board.WP.Value() + board.WK.Value()
