// Package board implements the mailbox board representation, Zobrist hashing, move
// generation and make/unmake machinery that the search (package search) drives.
package board

import (
	"fmt"
	"strings"
)

const (
	// MaxGameMoves bounds the irreversible-state history, indexed by HisPly.
	MaxGameMoves = 2048
	// MaxPieceCount bounds a single piece-type's square list (pawns promoting to extra
	// queens can in principle exceed 8, but never within the 10 slots the source reserves).
	MaxPieceCount = 10
)

// Undo captures the irreversible state needed to reverse one applied move.
type Undo struct {
	Move          Move
	CastlePerm    Castling
	EnPas         Square
	FiftyMove     int
	PosKey        ZobristHash
	FullMoveCount int
}

// Board is the mutable position: a 10x12 mailbox, piece lists, and the incremental state
// (side to move, castling rights, en-passant target, fifty-move clock, Zobrist hash) needed
// to make and unmake moves without recomputing from scratch. Not thread-safe; owned
// exclusively by the search and its caller (see spec §5).
type Board struct {
	Squares [120]Piece

	Side       Color
	EnPas      Square
	CastlePerm Castling

	FiftyMove     int
	Ply           int // depth from the current search root; reset to 0 by search.Root
	HisPly        int // irreversible ply count since game start; indexes History
	FullMoveCount int

	PieceCounts  [NumPieces]int
	PieceSquares [NumPieces][MaxPieceCount]Square

	Material [NumColors]int
	PosKey   ZobristHash

	History [MaxGameMoves]Undo

	Result Result
}

// NewBoard returns an empty, unpositioned board. Callers normally follow with fen.Decode.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears the board to the empty, unpositioned state. It does not install a position;
// callers follow with fen.Decode. Used by ucinewgame before reinstalling startpos.
func (b *Board) Reset() {
	for sq := range b.Squares {
		b.Squares[sq] = Offboard
	}
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			b.Squares[NewSquare(f, r)] = Empty
		}
	}

	b.Side = White
	b.EnPas = NoSquare
	b.CastlePerm = 0
	b.FiftyMove = 0
	b.Ply = 0
	b.HisPly = 0
	b.FullMoveCount = 1
	b.PieceCounts = [NumPieces]int{}
	b.PieceSquares = [NumPieces][MaxPieceCount]Square{}
	b.Material = [NumColors]int{}
	b.PosKey = 0
	b.Result = Result{}
}

// KingSquare returns the square of c's king. Panics if the board holds no king of color c
// (fen.Decode accepts such positions; MakeMove never removes a king).
func (b *Board) KingSquare(c Color) Square {
	k := ForColor(c, 5) // King is kind index 5 in ForColor's Pawn..King ordering
	if b.PieceCounts[k] == 0 {
		panic(fmt.Sprintf("board has no %v king", c))
	}
	return b.PieceSquares[k][0]
}

// AddPiece places p on sq: updates the mailbox, material, piece list and hash.
func (b *Board) AddPiece(sq Square, p Piece) {
	b.PosKey ^= zobrist.pieceKey(p, sq)

	b.Squares[sq] = p
	b.Material[p.Color()] += p.Value()

	b.PieceSquares[p][b.PieceCounts[p]] = sq
	b.PieceCounts[p]++
}

// ClearPiece removes whatever piece stands on sq: updates the mailbox, material, piece
// list (swap-remove with the last entry) and hash.
func (b *Board) ClearPiece(sq Square) {
	p := b.Squares[sq]

	b.PosKey ^= zobrist.pieceKey(p, sq)

	b.Squares[sq] = Empty
	b.Material[p.Color()] -= p.Value()

	idx := -1
	for i := 0; i < b.PieceCounts[p]; i++ {
		if b.PieceSquares[p][i] == sq {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("ClearPiece: %v not found on %v's list for %v", sq, p, p))
	}
	b.PieceCounts[p]--
	b.PieceSquares[p][idx] = b.PieceSquares[p][b.PieceCounts[p]]
}

// MovePiece relocates whatever piece stands on from to to (to must be empty).
func (b *Board) MovePiece(from, to Square) {
	p := b.Squares[from]

	b.PosKey ^= zobrist.pieceKey(p, from)
	b.PosKey ^= zobrist.pieceKey(p, to)

	b.Squares[from] = Empty
	b.Squares[to] = p

	for i := 0; i < b.PieceCounts[p]; i++ {
		if b.PieceSquares[p][i] == from {
			b.PieceSquares[p][i] = to
			return
		}
	}
	panic(fmt.Sprintf("MovePiece: %v not found on piece list for %v", from, p))
}

// GeneratePosKey recomputes the Zobrist hash from scratch. Used by CheckBoard to validate
// the incrementally-maintained PosKey invariant (spec §8 invariant 1).
func (b *Board) GeneratePosKey() ZobristHash {
	var hash ZobristHash

	for sq := 0; sq < 120; sq++ {
		p := b.Squares[sq]
		if p != Empty && p != Offboard {
			hash ^= zobrist.pieceKey(p, Square(sq))
		}
	}
	if b.Side == White {
		hash ^= zobrist.sideKey()
	}
	if b.EnPas != NoSquare {
		hash ^= zobrist.enPassantKey(b.EnPas)
	}
	hash ^= zobrist.castleKey(b.CastlePerm)
	return hash
}

// IsRepetition reports whether PosKey has occurred before within the irreversible-move
// window [HisPly-FiftyMove, HisPly). Per the source design this fires on ANY single prior
// occurrence (not threefold) -- see spec §9 Open Questions; we match that behavior exactly.
func (b *Board) IsRepetition() bool {
	start := b.HisPly - b.FiftyMove
	if start < 0 {
		start = 0
	}
	for i := start; i < b.HisPly; i++ {
		if b.History[i].PosKey == b.PosKey {
			return true
		}
	}
	return false
}

// CheckBoard validates the structural invariants of spec §8 (hash consistency and
// piece-list integrity). It is a debugging aid, never called on the hot path; callers that
// want it on every move can wire it in behind a build tag or test helper.
func (b *Board) CheckBoard() error {
	var counts [NumPieces]int
	var material [NumColors]int

	for sq := 0; sq < 120; sq++ {
		p := b.Squares[sq]
		if p == Empty || p == Offboard {
			continue
		}
		counts[p]++
		material[p.Color()] += p.Value()

		found := false
		for i := 0; i < b.PieceCounts[p]; i++ {
			if b.PieceSquares[p][i] == Square(sq) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("square %v holds %v but is absent from its piece list", Square(sq), p)
		}
	}
	for p := Piece(0); p < Offboard; p++ {
		if counts[p] != b.PieceCounts[p] {
			return fmt.Errorf("piece count mismatch for %v: mailbox=%v list=%v", p, counts[p], b.PieceCounts[p])
		}
	}
	if material != b.Material {
		return fmt.Errorf("material mismatch: mailbox=%v cached=%v", material, b.Material)
	}
	if got, want := b.GeneratePosKey(), b.PosKey; got != want {
		return fmt.Errorf("hash mismatch: recomputed=%x cached=%x", got, want)
	}
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			fmt.Fprintf(&sb, "%v", b.Squares[NewSquare(f, r)])
		}
		sb.WriteRune('\n')
	}
	fmt.Fprintf(&sb, "side=%v castle=%v ep=%v fifty=%v hash=%x", b.Side, b.CastlePerm, b.EnPas, b.FiftyMove, b.PosKey)
	return sb.String()
}
