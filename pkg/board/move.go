package board

import "fmt"

// Move is a move packed into a single 32-bit integer, per field:
//
//	bits 0-6    from square   (7 bits)
//	bits 7-13   to square     (7 bits)
//	bits 14-17  captured piece (4 bits)
//	bit  18     en-passant capture flag
//	bit  19     pawn-start (double push) flag
//	bits 20-23  promoted piece (4 bits)
//	bit  24     castle flag
//
// The captured field holds whatever piece occupied the to-square before the move (or Empty);
// it is independent of the promoted field, which may be set on the same move as a capture.
type Move uint32

// NoMove is the zero Move value and never a legal move; it is also the UCI "no move" (0000)
// sentinel returned when no legal move exists at the root.
const NoMove Move = 0

const (
	moveFromShift  = 0
	moveToShift    = 7
	moveCapShift   = 14
	moveEPBit      = 18
	movePawnSBit   = 19
	movePromoShift = 20
	moveCastleBit  = 24

	moveSquareMask = 0x7F
	movePieceMask  = 0xF
)

// NewMove packs a move. captured and promoted may be Empty.
func NewMove(from, to Square, captured, promoted Piece, enPassant, pawnStart, castle bool) Move {
	m := Move(from)<<moveFromShift | Move(to)<<moveToShift | Move(captured)<<moveCapShift | Move(promoted)<<movePromoShift
	if enPassant {
		m |= 1 << moveEPBit
	}
	if pawnStart {
		m |= 1 << movePawnSBit
	}
	if castle {
		m |= 1 << moveCastleBit
	}
	return m
}

func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

func (m Move) Captured() Piece {
	return Piece((m >> moveCapShift) & movePieceMask)
}

func (m Move) IsEnPassant() bool {
	return m&(1<<moveEPBit) != 0
}

func (m Move) IsPawnStart() bool {
	return m&(1<<movePawnSBit) != 0
}

func (m Move) Promoted() Piece {
	return Piece((m >> movePromoShift) & movePieceMask)
}

func (m Move) IsPromotion() bool {
	return m.Promoted() != Empty
}

func (m Move) IsCastle() bool {
	return m&(1<<moveCastleBit) != 0
}

// IsCapture reports whether the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Captured() != Empty || m.IsEnPassant()
}

// ParseUCI parses a move in the wire format of §6: four or five characters, from-square +
// to-square + optional promotion letter. The result carries from/to/promotion only; captured,
// en-passant and castle flags are not recoverable from the wire text alone and must be filled
// in by matching against a pseudo-legal move list (see Board.FindMove).
func ParseUCI(str string) (Square, Square, Piece, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return NoSquare, NoSquare, Empty, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return NoSquare, NoSquare, Empty, fmt.Errorf("invalid from square in %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return NoSquare, NoSquare, Empty, fmt.Errorf("invalid to square in %q: %w", str, err)
	}

	promo := Empty
	if len(runes) == 5 {
		switch runes[4] {
		case 'q':
			promo = WQ
		case 'r':
			promo = WR
		case 'b':
			promo = WB
		case 'n':
			promo = WN
		default:
			return NoSquare, NoSquare, Empty, fmt.Errorf("invalid promotion in %q", str)
		}
	}
	return from, to, promo, nil
}

func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := fmt.Sprintf("%v%v", m.From(), m.To())
	if p := m.Promoted(); p != Empty {
		s += string(p.PromotionLetter())
	}
	return s
}
