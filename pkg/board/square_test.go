package board_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	assert.Equal(t, 21, int(board.NewSquare(board.FileA, board.Rank1)))
	assert.Equal(t, 98, int(board.NewSquare(board.FileH, board.Rank8)))
	assert.True(t, board.NewSquare(board.FileA, board.Rank1).OnBoard())
	assert.True(t, board.NewSquare(board.FileH, board.Rank8).OnBoard())
}

func TestSquareFileRank(t *testing.T) {
	sq := board.NewSquare(board.FileC, board.Rank2)
	assert.Equal(t, board.FileC, sq.File())
	assert.Equal(t, board.Rank2, sq.Rank())
	assert.Equal(t, "c2", sq.String())
}

func TestSquareOffBoard(t *testing.T) {
	off := board.Square(0)
	assert.False(t, off.OnBoard())
	assert.Equal(t, "-", off.String())
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank4), sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)

	_, err = board.ParseSquareStr("e")
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	f, ok := board.ParseFile('A')
	require.True(t, ok)
	assert.Equal(t, board.FileA, f)

	_, ok = board.ParseFile('i')
	assert.False(t, ok)
}

func TestParseRank(t *testing.T) {
	r, ok := board.ParseRank('8')
	require.True(t, ok)
	assert.Equal(t, board.Rank8, r)

	_, ok = board.ParseRank('9')
	assert.False(t, ok)
}
