// Package eval implements the static position evaluator (spec §4.6): material, piece-square
// tables, pawn structure and a handful of positional bonuses, all folded into a single
// centipawn score from the side-to-move's perspective.
package eval

import "github.com/herohde/vice/pkg/board"

const (
	isolatedPenalty = -10
	rookOpenFile    = 10
	rookSemiFile    = 5
	queenOpenFile   = 5
	queenSemiFile   = 3
	bishopPairBonus = 30
)

// passedPawnRankBonus is indexed by the pawn's own rank (0=rank1..7=rank8).
var passedPawnRankBonus = [8]int{0, 5, 10, 20, 35, 60, 100, 200}

// Evaluate returns b's static score, in centipawns, from b.Side's perspective (spec §4.6
// step 7: positive favors the side to move).
func Evaluate(b *board.Board) Score {
	score := b.Material[board.White] - b.Material[board.Black]

	if b.PieceCounts[board.WP] == 0 && b.PieceCounts[board.BP] == 0 && board.MaterialDraw(b) {
		return Draw
	}

	score += pawnStructureScore(b)
	score += pieceSquareScore(b)
	score += fileBonusScore(b)
	score += bishopPairScore(b)

	if b.Side == board.Black {
		score = -score
	}
	return Score(score)
}

func pawnStructureScore(b *board.Board) int {
	var whiteFileMinRank [8]board.Rank // sentinel Rank8: no white pawn seen on the file
	var blackFileMaxRank [8]board.Rank // sentinel Rank1: no black pawn seen on the file
	for f := 0; f < 8; f++ {
		whiteFileMinRank[f] = board.Rank8
		blackFileMaxRank[f] = board.Rank1
	}

	for i := 0; i < b.PieceCounts[board.WP]; i++ {
		sq := b.PieceSquares[board.WP][i]
		f := int(sq.File())
		if r := sq.Rank(); r < whiteFileMinRank[f] {
			whiteFileMinRank[f] = r
		}
	}
	for i := 0; i < b.PieceCounts[board.BP]; i++ {
		sq := b.PieceSquares[board.BP][i]
		f := int(sq.File())
		if r := sq.Rank(); r > blackFileMaxRank[f] {
			blackFileMaxRank[f] = r
		}
	}

	var score int
	for i := 0; i < b.PieceCounts[board.WP]; i++ {
		sq := b.PieceSquares[board.WP][i]
		f, r := int(sq.File()), sq.Rank()

		if fileHasNoWhitePawn(whiteFileMinRank, f-1) && fileHasNoWhitePawn(whiteFileMinRank, f+1) {
			score += isolatedPenalty
		}
		if blackMaxAtOrBelow(blackFileMaxRank, f-1, r) && blackMaxAtOrBelow(blackFileMaxRank, f, r) && blackMaxAtOrBelow(blackFileMaxRank, f+1, r) {
			score += passedPawnRankBonus[r]
		}
	}
	for i := 0; i < b.PieceCounts[board.BP]; i++ {
		sq := b.PieceSquares[board.BP][i]
		f, r := int(sq.File()), sq.Rank()

		if fileHasNoBlackPawn(blackFileMaxRank, f-1) && fileHasNoBlackPawn(blackFileMaxRank, f+1) {
			score -= isolatedPenalty
		}
		if whiteMinAtOrAbove(whiteFileMinRank, f-1, r) && whiteMinAtOrAbove(whiteFileMinRank, f, r) && whiteMinAtOrAbove(whiteFileMinRank, f+1, r) {
			score -= passedPawnRankBonus[board.Rank8-r]
		}
	}
	return score
}

func fileHasNoWhitePawn(minRank [8]board.Rank, f int) bool {
	if f < 0 || f > 7 {
		return true
	}
	return minRank[f] == board.Rank8
}

func fileHasNoBlackPawn(maxRank [8]board.Rank, f int) bool {
	if f < 0 || f > 7 {
		return true
	}
	return maxRank[f] == board.Rank1
}

// blackMaxAtOrBelow reports whether file f (if on-board) has no black pawn standing ahead of
// (at a higher rank than) r -- i.e. nothing blocks a white pawn on rank r from passing.
func blackMaxAtOrBelow(maxRank [8]board.Rank, f int, r board.Rank) bool {
	if f < 0 || f > 7 {
		return true
	}
	return maxRank[f] <= r
}

func whiteMinAtOrAbove(minRank [8]board.Rank, f int, r board.Rank) bool {
	if f < 0 || f > 7 {
		return true
	}
	return minRank[f] >= r
}

func pieceSquareScore(b *board.Board) int {
	var score int

	for i := 0; i < b.PieceCounts[board.WP]; i++ {
		score += pstValue(&pawnPST, board.White, b.PieceSquares[board.WP][i])
	}
	for i := 0; i < b.PieceCounts[board.BP]; i++ {
		score -= pstValue(&pawnPST, board.Black, b.PieceSquares[board.BP][i])
	}
	for i := 0; i < b.PieceCounts[board.WN]; i++ {
		score += pstValue(&knightPST, board.White, b.PieceSquares[board.WN][i])
	}
	for i := 0; i < b.PieceCounts[board.BN]; i++ {
		score -= pstValue(&knightPST, board.Black, b.PieceSquares[board.BN][i])
	}
	for i := 0; i < b.PieceCounts[board.WB]; i++ {
		score += pstValue(&bishopPST, board.White, b.PieceSquares[board.WB][i])
	}
	for i := 0; i < b.PieceCounts[board.BB]; i++ {
		score -= pstValue(&bishopPST, board.Black, b.PieceSquares[board.BB][i])
	}
	for i := 0; i < b.PieceCounts[board.WR]; i++ {
		score += pstValue(&rookPST, board.White, b.PieceSquares[board.WR][i])
	}
	for i := 0; i < b.PieceCounts[board.BR]; i++ {
		score -= pstValue(&rookPST, board.Black, b.PieceSquares[board.BR][i])
	}
	for i := 0; i < b.PieceCounts[board.WQ]; i++ {
		score += pstValue(&rookPST, board.White, b.PieceSquares[board.WQ][i])
	}
	for i := 0; i < b.PieceCounts[board.BQ]; i++ {
		score -= pstValue(&rookPST, board.Black, b.PieceSquares[board.BQ][i])
	}

	whiteKing, blackKing := kingTable(b.Material[board.Black]), kingTable(b.Material[board.White])
	score += pstValue(whiteKing, board.White, b.KingSquare(board.White))
	score -= pstValue(blackKing, board.Black, b.KingSquare(board.Black))

	return score
}

// kingTable picks the opening or endgame king table based on how much material the *opponent*
// (the side attacking this king) still has on the board, per spec §4.6.4.
func kingTable(opponentMaterial int) *[8][8]int {
	if opponentMaterial > EndgameMaterial {
		return &kingOpeningPST
	}
	return &kingEndgamePST
}

func fileBonusScore(b *board.Board) int {
	var whiteHasPawn, blackHasPawn [8]bool
	for i := 0; i < b.PieceCounts[board.WP]; i++ {
		whiteHasPawn[b.PieceSquares[board.WP][i].File()] = true
	}
	for i := 0; i < b.PieceCounts[board.BP]; i++ {
		blackHasPawn[b.PieceSquares[board.BP][i].File()] = true
	}

	var score int
	for i := 0; i < b.PieceCounts[board.WR]; i++ {
		score += fileBonus(whiteHasPawn, blackHasPawn, b.PieceSquares[board.WR][i].File(), rookOpenFile, rookSemiFile)
	}
	for i := 0; i < b.PieceCounts[board.BR]; i++ {
		score -= fileBonus(blackHasPawn, whiteHasPawn, b.PieceSquares[board.BR][i].File(), rookOpenFile, rookSemiFile)
	}
	for i := 0; i < b.PieceCounts[board.WQ]; i++ {
		score += fileBonus(whiteHasPawn, blackHasPawn, b.PieceSquares[board.WQ][i].File(), queenOpenFile, queenSemiFile)
	}
	for i := 0; i < b.PieceCounts[board.BQ]; i++ {
		score -= fileBonus(blackHasPawn, whiteHasPawn, b.PieceSquares[board.BQ][i].File(), queenOpenFile, queenSemiFile)
	}
	return score
}

func fileBonus(own, opp [8]bool, f board.File, open, semi int) int {
	if own[f] {
		return 0
	}
	if !opp[f] {
		return open
	}
	return semi
}

func bishopPairScore(b *board.Board) int {
	var score int
	if b.PieceCounts[board.WB] >= 2 {
		score += bishopPairBonus
	}
	if b.PieceCounts[board.BB] >= 2 {
		score -= bishopPairBonus
	}
	return score
}

