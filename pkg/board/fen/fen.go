// Package fen reads and writes board.Board positions in Forsyth-Edwards notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/vice/pkg/board"
)

// Initial is the FEN of the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a fresh board.Board. Per spec §6, the halfmove clock and
// fullmove number fields are optional and default to 0 and 1 respectively when the record
// carries only the first four fields.
func Decode(str string) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(str))
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", str)
	}

	b := board.NewBoard()

	f, r := board.FileA, board.Rank8
	for _, c := range parts[0] {
		switch {
		case c == '/':
			f, r = board.FileA, r-1

		case unicode.IsDigit(c):
			f += board.File(c - '0')

		case unicode.IsLetter(c):
			p, ok := board.ParsePiece(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", string(c), str)
			}
			if f < board.FileA || f > board.FileH || r < board.Rank1 || r > board.Rank8 {
				return nil, fmt.Errorf("piece placement overruns board in FEN: %q", str)
			}
			b.AddPiece(board.NewSquare(f, r), p)
			f++

		default:
			return nil, fmt.Errorf("invalid character %q in FEN: %q", string(c), str)
		}
	}
	if f != board.FileH+1 || r != board.Rank1 {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", str)
	}

	switch parts[1] {
	case "w", "W":
		b.Side = board.White
	case "b", "B":
		b.Side = board.Black
	default:
		return nil, fmt.Errorf("invalid active color in FEN: %q", str)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling availability in FEN: %q", str)
	}
	b.CastlePerm = castling

	b.EnPas = board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square in FEN: %q: %w", str, err)
		}
		b.EnPas = sq
	}

	b.FiftyMove = 0
	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", str)
		}
		b.FiftyMove = n
	}

	b.FullMoveCount = 1
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid fullmove number in FEN: %q", str)
		}
		b.FullMoveCount = n
	}

	b.PosKey = b.GeneratePosKey()
	return b, nil
}

// Encode renders b's current position as a FEN record.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for r := board.Rank8; r >= board.Rank1; r-- {
		blanks := 0
		for f := board.FileA; f <= board.FileH; f++ {
			p := b.Squares[board.NewSquare(f, r)]
			if p == board.Empty {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > board.Rank1 {
			sb.WriteRune('/')
		}
	}

	side := "w"
	if b.Side == board.Black {
		side = "b"
	}

	ep := "-"
	if b.EnPas != board.NoSquare {
		ep = b.EnPas.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), side, b.CastlePerm, ep, b.FiftyMove, b.FullMoveCount)
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return 0, true
	}

	var c board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			c |= board.WhiteKingside
		case 'Q':
			c |= board.WhiteQueenside
		case 'k':
			c |= board.BlackKingside
		case 'q':
			c |= board.BlackQueenside
		default:
			return 0, false
		}
	}
	return c, true
}
