package board

// MoveList accumulates pseudo-legal moves for one call to GenerateAllMoves or
// GenerateCaptureMoves. Legality (does the move leave the mover's own king in check) is not
// checked here -- it is enforced by MakeMove's trial-and-unmake check (spec §4.4, §4.5).
type MoveList struct {
	Moves []Move
}

func (l *MoveList) add(m Move) {
	l.Moves = append(l.Moves, m)
}

const (
	pawnStartRankWhite = Rank2
	pawnStartRankBlack = Rank7
	pawnPromoRankWhite = Rank7
	pawnPromoRankBlack = Rank2
)

// GenerateAllMoves produces every pseudo-legal move for the side to move, in the emission
// order of spec §4.4: pawns, castling, sliders, then knights/king.
func (b *Board) GenerateAllMoves() *MoveList {
	list := &MoveList{}
	b.generatePawnMoves(list)
	b.generateCastleMoves(list)
	b.generateSliderMoves(list, false)
	b.generateLeaperMoves(list, false)
	return list
}

// GenerateCaptureMoves produces only captures, en-passant captures, and promotions (which are
// tactical irrespective of whether the destination is occupied). Used by quiescence search.
func (b *Board) GenerateCaptureMoves() *MoveList {
	list := &MoveList{}
	b.generatePawnCaptures(list)
	b.generateSliderMoves(list, true)
	b.generateLeaperMoves(list, true)
	return list
}

func addPromotions(list *MoveList, side Color, from, to Square, captured Piece, isCapture bool) {
	for _, kind := range []int{4, 3, 2, 1} { // Queen, Rook, Bishop, Knight (most valuable first)
		list.add(NewMove(from, to, captured, ForColor(side, kind), false, false, false))
	}
	_ = isCapture
}

func (b *Board) generatePawnMoves(list *MoveList) {
	side := b.Side
	pawn := ForColor(side, 0)
	forward, startRank, promoRank := 10, pawnStartRankWhite, pawnPromoRankWhite
	if side == Black {
		forward, startRank, promoRank = -10, pawnStartRankBlack, pawnPromoRankBlack
	}

	for i := 0; i < b.PieceCounts[pawn]; i++ {
		from := b.PieceSquares[pawn][i]

		one := Square(int(from) + forward)
		if b.Squares[one] == Empty {
			if from.Rank() == promoRank {
				addPromotions(list, side, from, one, Empty, false)
			} else {
				list.add(NewMove(from, one, Empty, Empty, false, false, false))
				if from.Rank() == startRank {
					two := Square(int(one) + forward)
					if b.Squares[two] == Empty {
						list.add(NewMove(from, two, Empty, Empty, false, true, false))
					}
				}
			}
		}

		for _, capOffset := range pawnCaptureOffsets(side) {
			to := Square(int(from) + capOffset)
			target := b.Squares[to]
			if target == Offboard {
				continue
			}
			if target != Empty && target.Color() != side {
				if from.Rank() == promoRank {
					addPromotions(list, side, from, to, target, true)
				} else {
					list.add(NewMove(from, to, target, Empty, false, false, false))
				}
			} else if to == b.EnPas && b.EnPas != NoSquare {
				list.add(NewMove(from, to, ForColor(side.Opponent(), 0), Empty, true, false, false))
			}
		}
	}
}

// generatePawnCaptures emits only the capturing/promoting subset of generatePawnMoves, for
// GenerateCaptureMoves.
func (b *Board) generatePawnCaptures(list *MoveList) {
	side := b.Side
	pawn := ForColor(side, 0)
	forward, promoRank := 10, pawnPromoRankWhite
	if side == Black {
		forward, promoRank = -10, pawnPromoRankBlack
	}

	for i := 0; i < b.PieceCounts[pawn]; i++ {
		from := b.PieceSquares[pawn][i]

		if from.Rank() == promoRank {
			one := Square(int(from) + forward)
			if b.Squares[one] == Empty {
				addPromotions(list, side, from, one, Empty, false)
			}
		}

		for _, capOffset := range pawnCaptureOffsets(side) {
			to := Square(int(from) + capOffset)
			target := b.Squares[to]
			if target == Offboard {
				continue
			}
			if target != Empty && target.Color() != side {
				if from.Rank() == promoRank {
					addPromotions(list, side, from, to, target, true)
				} else {
					list.add(NewMove(from, to, target, Empty, false, false, false))
				}
			} else if to == b.EnPas && b.EnPas != NoSquare {
				list.add(NewMove(from, to, ForColor(side.Opponent(), 0), Empty, true, false, false))
			}
		}
	}
}

func pawnCaptureOffsets(side Color) [2]int {
	if side == White {
		return [2]int{9, 11}
	}
	return [2]int{-9, -11}
}

// generateCastleMoves emits castling moves when rights allow, the intervening squares are
// empty, and neither the king's square nor the square it crosses is attacked. The king's
// destination square being attacked is left to MakeMove's legality check, per spec §4.4.
func (b *Board) generateCastleMoves(list *MoveList) {
	opp := b.Side.Opponent()

	if b.Side == White {
		if b.CastlePerm.IsAllowed(WhiteKingside) &&
			b.Squares[F1] == Empty && b.Squares[G1] == Empty &&
			!b.IsSquareAttacked(E1, opp) && !b.IsSquareAttacked(F1, opp) {
			list.add(NewMove(E1, G1, Empty, Empty, false, false, true))
		}
		if b.CastlePerm.IsAllowed(WhiteQueenside) &&
			b.Squares[D1] == Empty && b.Squares[C1] == Empty && b.Squares[B1] == Empty &&
			!b.IsSquareAttacked(E1, opp) && !b.IsSquareAttacked(D1, opp) {
			list.add(NewMove(E1, C1, Empty, Empty, false, false, true))
		}
	} else {
		if b.CastlePerm.IsAllowed(BlackKingside) &&
			b.Squares[F8] == Empty && b.Squares[G8] == Empty &&
			!b.IsSquareAttacked(E8, opp) && !b.IsSquareAttacked(F8, opp) {
			list.add(NewMove(E8, G8, Empty, Empty, false, false, true))
		}
		if b.CastlePerm.IsAllowed(BlackQueenside) &&
			b.Squares[D8] == Empty && b.Squares[C8] == Empty && b.Squares[B8] == Empty &&
			!b.IsSquareAttacked(E8, opp) && !b.IsSquareAttacked(D8, opp) {
			list.add(NewMove(E8, C8, Empty, Empty, false, false, true))
		}
	}
}

// generateSliderMoves walks each direction of each bishop/rook/queen of the side to move
// until it meets an off-board sentinel or a piece, per spec §4.4.3. When capturesOnly is
// set, quiet slides are skipped.
func (b *Board) generateSliderMoves(list *MoveList, capturesOnly bool) {
	side := b.Side

	b.walkSlider(list, ForColor(side, 2), bishopDirs, capturesOnly) // Bishop
	b.walkSlider(list, ForColor(side, 3), rookDirs, capturesOnly)   // Rook
	b.walkSlider(list, ForColor(side, 4), bishopDirs, capturesOnly) // Queen
	b.walkSlider(list, ForColor(side, 4), rookDirs, capturesOnly)
}

func (b *Board) walkSlider(list *MoveList, piece Piece, dirs [4]int, capturesOnly bool) {
	side := b.Side
	for i := 0; i < b.PieceCounts[piece]; i++ {
		from := b.PieceSquares[piece][i]
		for _, d := range dirs {
			t := from
			for {
				t = Square(int(t) + d)
				target := b.Squares[t]
				if target == Offboard {
					break
				}
				if target == Empty {
					if !capturesOnly {
						list.add(NewMove(from, t, Empty, Empty, false, false, false))
					}
					continue
				}
				if target.Color() == side.Opponent() {
					list.add(NewMove(from, t, target, Empty, false, false, false))
				}
				break
			}
		}
	}
}

// generateLeaperMoves emits knight and king one-step moves (castling is handled separately).
func (b *Board) generateLeaperMoves(list *MoveList, capturesOnly bool) {
	side := b.Side
	b.walkLeaper(list, ForColor(side, 1), knightOffsets[:], capturesOnly)
	b.walkLeaper(list, ForColor(side, 5), kingOffsets[:], capturesOnly)
}

func (b *Board) walkLeaper(list *MoveList, piece Piece, offsets []int, capturesOnly bool) {
	side := b.Side
	for i := 0; i < b.PieceCounts[piece]; i++ {
		from := b.PieceSquares[piece][i]
		for _, d := range offsets {
			to := Square(int(from) + d)
			target := b.Squares[to]
			if target == Offboard {
				continue
			}
			if target == Empty {
				if !capturesOnly {
					list.add(NewMove(from, to, Empty, Empty, false, false, false))
				}
				continue
			}
			if target.Color() == side.Opponent() {
				list.add(NewMove(from, to, target, Empty, false, false, false))
			}
		}
	}
}

// FindMove resolves a from/to/promotion triple (as parsed off the UCI wire) against the
// pseudo-legal move list, filling in the captured/en-passant/castle/pawn-start metadata that
// the wire format cannot express. Returns false if no pseudo-legal move matches.
func (b *Board) FindMove(from, to Square, promo Piece) (Move, bool) {
	list := b.GenerateAllMoves()
	for _, m := range list.Moves {
		if m.From() != from || m.To() != to {
			continue
		}
		if promo != Empty && !samePromoKind(m.Promoted(), promo) {
			continue
		}
		if promo == Empty && m.IsPromotion() {
			continue
		}
		return m, true
	}
	return NoMove, false
}

func samePromoKind(a, b Piece) bool {
	if a == Empty || b == Empty {
		return a == b
	}
	return a.PromotionLetter() == b.PromotionLetter()
}
