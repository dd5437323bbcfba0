package board

// Named squares, used by castling rights, castling move generation and rook-move lookups. Computed rather than
// hand-numbered to keep them self-evidently consistent with NewSquare's formula.
var (
	A1, B1, C1, D1, E1, F1, G1, H1 = rank(Rank1)
	A2, B2, C2, D2, E2, F2, G2, H2 = rank(Rank2)
	A7, B7, C7, D7, E7, F7, G7, H7 = rank(Rank7)
	A8, B8, C8, D8, E8, F8, G8, H8 = rank(Rank8)
)

func rank(r Rank) (a, b, c, d, e, f, g, h Square) {
	return NewSquare(FileA, r), NewSquare(FileB, r), NewSquare(FileC, r), NewSquare(FileD, r),
		NewSquare(FileE, r), NewSquare(FileF, r), NewSquare(FileG, r), NewSquare(FileH, r)
}
