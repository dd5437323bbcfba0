package board_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(f board.File, r board.Rank) board.Square {
	return board.NewSquare(f, r)
}

func TestMakeTakeMoveRestoresState(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	before := *b
	m, ok := b.FindMove(sq(board.FileE, board.Rank2), sq(board.FileE, board.Rank4), board.Empty)
	require.True(t, ok)

	require.True(t, b.MakeMove(m))
	assert.NotEqual(t, before.PosKey, b.PosKey)
	assert.Equal(t, sq(board.FileE, board.Rank3), b.EnPas)

	b.TakeMove()
	assert.Equal(t, before.PosKey, b.PosKey)
	assert.Equal(t, before.Squares, b.Squares)
	assert.Equal(t, before.Side, b.Side)
	assert.Equal(t, before.EnPas, b.EnPas)
}

func TestMakeMoveEnPassantCapture(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	require.NoError(t, err)

	m, ok := b.FindMove(sq(board.FileD, board.Rank4), sq(board.FileE, board.Rank3), board.Empty)
	require.True(t, ok)
	assert.True(t, m.IsEnPassant())

	require.True(t, b.MakeMove(m))
	assert.Equal(t, board.Empty, b.Squares[sq(board.FileE, board.Rank4)])
	assert.Equal(t, board.BP, b.Squares[sq(board.FileE, board.Rank3)])
	require.NoError(t, b.CheckBoard())

	b.TakeMove()
	assert.Equal(t, board.WP, b.Squares[sq(board.FileE, board.Rank4)])
	require.NoError(t, b.CheckBoard())
}

func TestMakeMoveCastlingMovesRook(t *testing.T) {
	b, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m, ok := b.FindMove(sq(board.FileE, board.Rank1), sq(board.FileG, board.Rank1), board.Empty)
	require.True(t, ok)
	assert.True(t, m.IsCastle())

	require.True(t, b.MakeMove(m))
	assert.Equal(t, board.WK, b.Squares[sq(board.FileG, board.Rank1)])
	assert.Equal(t, board.WR, b.Squares[sq(board.FileF, board.Rank1)])
	assert.Equal(t, board.Empty, b.Squares[sq(board.FileH, board.Rank1)])
	assert.False(t, b.CastlePerm.IsAllowed(board.WhiteKingside))
	require.NoError(t, b.CheckBoard())

	b.TakeMove()
	assert.Equal(t, board.WR, b.Squares[sq(board.FileH, board.Rank1)])
	require.NoError(t, b.CheckBoard())
}

func TestMakeMovePromotion(t *testing.T) {
	b, err := fen.Decode("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m, ok := b.FindMove(sq(board.FileE, board.Rank7), sq(board.FileE, board.Rank8), board.WQ)
	require.True(t, ok)

	require.True(t, b.MakeMove(m))
	assert.Equal(t, board.WQ, b.Squares[sq(board.FileE, board.Rank8)])
	require.NoError(t, b.CheckBoard())

	b.TakeMove()
	assert.Equal(t, board.WP, b.Squares[sq(board.FileE, board.Rank7)])
	require.NoError(t, b.CheckBoard())
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// The white king on e1 stands on the e-file held by the black rook on e8: Ke1-e2 keeps
	// it on that file, would leave white's own king in check, and must be rejected.
	b, err := fen.Decode("4r3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m, ok := b.FindMove(sq(board.FileE, board.Rank1), sq(board.FileE, board.Rank2), board.Empty)
	require.True(t, ok)

	before := *b
	assert.False(t, b.MakeMove(m))
	assert.Equal(t, before.Squares, b.Squares)
	assert.Equal(t, before.Side, b.Side)
}

func TestMakeNullMoveTogglesSideOnly(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	before := *b
	b.MakeNullMove()
	assert.Equal(t, before.Side.Opponent(), b.Side)
	assert.Equal(t, board.NoSquare, b.EnPas)
	assert.Equal(t, before.Squares, b.Squares)

	b.TakeNullMove()
	assert.Equal(t, before.Side, b.Side)
	assert.Equal(t, before.PosKey, b.PosKey)
}
