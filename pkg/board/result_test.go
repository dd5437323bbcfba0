package board_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateResultCheckmate(t *testing.T) {
	b, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	m, ok := b.FindMove(sq(board.FileA, board.Rank1), sq(board.FileA, board.Rank8), board.Empty)
	require.True(t, ok)
	require.True(t, b.MakeMove(m))

	b.UpdateResult()
	assert.Equal(t, board.WhiteWins, b.Result.Outcome)
	assert.Equal(t, board.Checkmate, b.Result.Reason)
}

func TestUpdateResultStalemate(t *testing.T) {
	b, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	b.UpdateResult()
	assert.Equal(t, board.Draw, b.Result.Outcome)
	assert.Equal(t, board.Stalemate, b.Result.Reason)
}

func TestUpdateResultInsufficientMaterial(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	b.UpdateResult()
	assert.Equal(t, board.Draw, b.Result.Outcome)
	assert.Equal(t, board.InsufficientMaterial, b.Result.Reason)
}

func TestUpdateResultFiftyMoveRule(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 100 1")
	require.NoError(t, err)

	b.UpdateResult()
	assert.Equal(t, board.Draw, b.Result.Outcome)
	assert.Equal(t, board.FiftyMoveRule, b.Result.Reason)
}
