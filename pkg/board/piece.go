package board

import "fmt"

// Piece identifies the occupant of a square: empty, a colored chess piece, or the
// off-board sentinel used by the mailbox border. 4 bits.
type Piece uint8

const (
	Empty Piece = iota
	WP
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	Offboard
)

// NumPieces bounds the piece lists: indices 0..12 are meaningful (0 is Empty, used only
// as the en-passant Zobrist slot), 13 marks Offboard and is never looked up in piece lists.
const NumPieces = Offboard + 1

// Color returns the piece's color. Only valid for WP..BK.
func (p Piece) Color() Color {
	if p >= WP && p <= WK {
		return White
	}
	return Black
}

// IsWhite, IsBlack report the piece's color membership.
func (p Piece) IsWhite() bool { return p >= WP && p <= WK }
func (p Piece) IsBlack() bool { return p >= BP && p <= BK }

// IsPawn, IsKnight, IsBishop, IsRook, IsQueen, IsKing classify a piece irrespective of color.
func (p Piece) IsPawn() bool   { return p == WP || p == BP }
func (p Piece) IsKnight() bool { return p == WN || p == BN }
func (p Piece) IsBishop() bool { return p == WB || p == BB }
func (p Piece) IsRook() bool   { return p == WR || p == BR }
func (p Piece) IsQueen() bool  { return p == WQ || p == BQ }
func (p Piece) IsKing() bool   { return p == WK || p == BK }

// IsSlider reports whether the piece slides (bishop, rook or queen).
func (p Piece) IsSlider() bool {
	return p.IsBishop() || p.IsRook() || p.IsQueen()
}

// IsMajorOrMinor reports whether the piece is a knight, bishop, rook or queen.
func (p Piece) IsMajorOrMinor() bool {
	return p.IsKnight() || p.IsBishop() || p.IsRook() || p.IsQueen()
}

// Value returns the piece's static material value in centipawns.
func (p Piece) Value() int {
	switch p {
	case WP, BP:
		return 100
	case WN, BN:
		return 325
	case WB, BB:
		return 325
	case WR, BR:
		return 550
	case WQ, BQ:
		return 1000
	case WK, BK:
		return 50000
	default:
		return 0
	}
}

// ForColor returns the colored piece of the given kind: Pawn=0, Knight, Bishop, Rook, Queen, King=5.
func ForColor(c Color, kind int) Piece {
	if c == White {
		return WP + Piece(kind)
	}
	return BP + Piece(kind)
}

// ParsePiece parses a FEN piece letter.
func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'P':
		return WP, true
	case 'N':
		return WN, true
	case 'B':
		return WB, true
	case 'R':
		return WR, true
	case 'Q':
		return WQ, true
	case 'K':
		return WK, true
	case 'p':
		return BP, true
	case 'n':
		return BN, true
	case 'b':
		return BB, true
	case 'r':
		return BR, true
	case 'q':
		return BQ, true
	case 'k':
		return BK, true
	default:
		return Empty, false
	}
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case WP:
		return "P"
	case WN:
		return "N"
	case WB:
		return "B"
	case WR:
		return "R"
	case WQ:
		return "Q"
	case WK:
		return "K"
	case BP:
		return "p"
	case BN:
		return "n"
	case BB:
		return "b"
	case BR:
		return "r"
	case BQ:
		return "q"
	case BK:
		return "k"
	case Offboard:
		return "X"
	default:
		return fmt.Sprintf("?%d", uint8(p))
	}
}

// PromotionLetter returns the UCI wire letter for a promotion piece (q, r, b, n).
func (p Piece) PromotionLetter() rune {
	switch p {
	case WQ, BQ:
		return 'q'
	case WR, BR:
		return 'r'
	case WB, BB:
		return 'b'
	case WN, BN:
		return 'n'
	default:
		return 0
	}
}
