package board

// MakeMove applies m, which must come from GenerateAllMoves/GenerateCaptureMoves (or
// FindMove) for the current position. It returns false, leaving the board exactly as it was,
// if m would leave the moving side's own king in check -- the trial-and-unmake legality test
// of spec §4.5 step 11. On true, the position is left with the opponent to move.
func (b *Board) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	side := b.Side

	b.History[b.HisPly] = Undo{
		Move:          m,
		CastlePerm:    b.CastlePerm,
		EnPas:         b.EnPas,
		FiftyMove:     b.FiftyMove,
		PosKey:        b.PosKey,
		FullMoveCount: b.FullMoveCount,
	}

	if m.IsEnPassant() {
		capSq := NewSquare(to.File(), from.Rank())
		b.ClearPiece(capSq)
	} else if m.Captured() != Empty {
		b.ClearPiece(to)
	}

	if b.EnPas != NoSquare {
		b.PosKey ^= zobrist.enPassantKey(b.EnPas)
	}
	b.PosKey ^= zobrist.castleKey(b.CastlePerm)

	b.FiftyMove++
	if m.Captured() != Empty || b.Squares[from].IsPawn() {
		b.FiftyMove = 0
	}

	if m.IsPawnStart() {
		b.EnPas = Square((int(from) + int(to)) / 2)
	} else {
		b.EnPas = NoSquare
	}
	if b.EnPas != NoSquare {
		b.PosKey ^= zobrist.enPassantKey(b.EnPas)
	}

	b.CastlePerm &= castleMask[from] & castleMask[to]
	b.PosKey ^= zobrist.castleKey(b.CastlePerm)

	b.MovePiece(from, to)

	if promoted := m.Promoted(); promoted != Empty {
		b.ClearPiece(to)
		b.AddPiece(to, promoted)
	}

	if m.IsCastle() {
		switch to {
		case G1:
			b.MovePiece(H1, F1)
		case C1:
			b.MovePiece(A1, D1)
		case G8:
			b.MovePiece(H8, F8)
		case C8:
			b.MovePiece(A8, D8)
		}
	}

	b.Side = side.Opponent()
	b.PosKey ^= zobrist.sideKey()

	b.Ply++
	b.HisPly++
	b.FullMoveCount++

	if b.IsSquareAttacked(b.KingSquare(side), b.Side) {
		b.TakeMove()
		return false
	}
	return true
}

// TakeMove reverses the most recently applied move, restoring the board to exactly the state
// it was in before the matching MakeMove call.
func (b *Board) TakeMove() {
	b.HisPly--
	b.Ply--

	undo := b.History[b.HisPly]
	m := undo.Move
	from, to := m.From(), m.To()

	b.Side = b.Side.Opponent() // back to the side that made the move

	if m.IsPromotion() {
		b.ClearPiece(to)
		b.AddPiece(to, ForColor(b.Side, 0))
	}

	b.MovePiece(to, from)

	if m.IsCastle() {
		switch to {
		case G1:
			b.MovePiece(F1, H1)
		case C1:
			b.MovePiece(D1, A1)
		case G8:
			b.MovePiece(F8, H8)
		case C8:
			b.MovePiece(D8, A8)
		}
	}

	if m.IsEnPassant() {
		capSq := NewSquare(to.File(), from.Rank())
		b.AddPiece(capSq, ForColor(b.Side.Opponent(), 0))
	} else if captured := m.Captured(); captured != Empty {
		b.AddPiece(to, captured)
	}

	b.CastlePerm = undo.CastlePerm
	b.FiftyMove = undo.FiftyMove
	b.EnPas = undo.EnPas
	b.PosKey = undo.PosKey
	b.FullMoveCount = undo.FullMoveCount
}

// MakeNullMove plays a null move: flips the side to move and clears the en-passant target,
// without moving any piece. Used by null-move pruning in package search.
func (b *Board) MakeNullMove() {
	b.History[b.HisPly] = Undo{
		Move:          NoMove,
		CastlePerm:    b.CastlePerm,
		EnPas:         b.EnPas,
		FiftyMove:     b.FiftyMove,
		PosKey:        b.PosKey,
		FullMoveCount: b.FullMoveCount,
	}

	if b.EnPas != NoSquare {
		b.PosKey ^= zobrist.enPassantKey(b.EnPas)
	}
	b.EnPas = NoSquare

	b.Side = b.Side.Opponent()
	b.PosKey ^= zobrist.sideKey()

	b.Ply++
	b.HisPly++
}

// TakeNullMove reverses MakeNullMove.
func (b *Board) TakeNullMove() {
	b.HisPly--
	b.Ply--

	undo := b.History[b.HisPly]
	b.Side = b.Side.Opponent()
	b.EnPas = undo.EnPas
	b.PosKey = undo.PosKey
}
