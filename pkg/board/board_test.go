package board_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddClearPieceUpdatesMaterialAndLists(t *testing.T) {
	b := board.NewBoard()
	b.AddPiece(board.NewSquare(board.FileE, board.Rank4), board.WN)

	assert.Equal(t, 1, b.PieceCounts[board.WN])
	assert.Equal(t, board.WN.Value(), b.Material[board.White])
	require.NoError(t, b.CheckBoard())

	b.ClearPiece(board.NewSquare(board.FileE, board.Rank4))
	assert.Equal(t, 0, b.PieceCounts[board.WN])
	assert.Equal(t, 0, b.Material[board.White])
	require.NoError(t, b.CheckBoard())
}

func TestMovePieceUpdatesListAndHash(t *testing.T) {
	b := board.NewBoard()
	from, to := board.NewSquare(board.FileE, board.Rank4), board.NewSquare(board.FileE, board.Rank5)
	b.AddPiece(from, board.WQ)

	before := b.PosKey
	b.MovePiece(from, to)
	assert.NotEqual(t, before, b.PosKey)
	assert.Equal(t, board.Empty, b.Squares[from])
	assert.Equal(t, board.WQ, b.Squares[to])
	assert.Equal(t, to, b.PieceSquares[board.WQ][0])
	require.NoError(t, b.CheckBoard())
}

func TestGeneratePosKeyMatchesIncremental(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, b.GeneratePosKey(), b.PosKey)
}

func TestKingSquare(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank1), b.KingSquare(board.White))
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank8), b.KingSquare(board.Black))
}

func TestIsRepetitionFiresOnFirstRecurrence(t *testing.T) {
	// Per spec §9, repetition detection fires on any single prior occurrence of the hash
	// within the fifty-move window, not true threefold repetition. This is intentional.
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	kingOut, _ := b.FindMove(board.NewSquare(board.FileE, board.Rank1), board.NewSquare(board.FileD, board.Rank1), board.Empty)
	require.True(t, b.MakeMove(kingOut))
	other, _ := b.FindMove(board.NewSquare(board.FileE, board.Rank8), board.NewSquare(board.FileD, board.Rank8), board.Empty)
	require.True(t, b.MakeMove(other))

	back, _ := b.FindMove(board.NewSquare(board.FileD, board.Rank1), board.NewSquare(board.FileE, board.Rank1), board.Empty)
	require.True(t, b.MakeMove(back))
	otherBack, _ := b.FindMove(board.NewSquare(board.FileD, board.Rank8), board.NewSquare(board.FileE, board.Rank8), board.Empty)
	require.True(t, b.MakeMove(otherBack))

	assert.True(t, b.IsRepetition())
}
