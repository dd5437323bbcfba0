package board

// knightOffsets and kingOffsets are mailbox deltas; walking off the edge of the board lands
// on an Offboard sentinel cell rather than requiring an explicit bounds check.
var knightOffsets = [8]int{-21, -19, -12, -8, 8, 12, 19, 21}
var kingOffsets = [8]int{-11, -10, -9, -1, 1, 9, 10, 11}

// rookDirs and bishopDirs are the four sliding directions for each slider family.
var rookDirs = [4]int{-10, -1, 1, 10}
var bishopDirs = [4]int{-11, -9, 9, 11}

// pawnAttackOffsets[c] gives the two squares (relative to the attacker) from which a pawn
// of color c attacks a given square -- equivalently, looked up from the target square,
// the two squares a pawn of color c would stand on to attack it.
var pawnAttackOffsets = [NumColors][2]int{
	White: {-11, -9}, // a white pawn attacks from one rank below
	Black: {9, 11},
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	for _, d := range pawnAttackOffsets[by] {
		from := Square(int(sq) + d)
		if p := b.Squares[from]; p == ForColor(by, 0) {
			return true
		}
	}

	for _, d := range knightOffsets {
		from := Square(int(sq) + d)
		if p := b.Squares[from]; p == ForColor(by, 1) {
			return true
		}
	}

	for _, d := range bishopDirs {
		t := sq
		for {
			t = Square(int(t) + d)
			p := b.Squares[t]
			if p == Offboard {
				break
			}
			if p == Empty {
				continue
			}
			if p.Color() == by && (p.IsBishop() || p.IsQueen()) {
				return true
			}
			break
		}
	}

	for _, d := range rookDirs {
		t := sq
		for {
			t = Square(int(t) + d)
			p := b.Squares[t]
			if p == Offboard {
				break
			}
			if p == Empty {
				continue
			}
			if p.Color() == by && (p.IsRook() || p.IsQueen()) {
				return true
			}
			break
		}
	}

	for _, d := range kingOffsets {
		from := Square(int(sq) + d)
		if p := b.Squares[from]; p == ForColor(by, 5) {
			return true
		}
	}

	return false
}

// IsInCheck reports whether c's king is attacked by the opponent.
func (b *Board) IsInCheck(c Color) bool {
	return b.IsSquareAttacked(b.KingSquare(c), c.Opponent())
}
