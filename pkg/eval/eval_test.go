package eval_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/herohde/vice/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSymmetricAtStartpos(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, eval.Score(0), eval.Evaluate(b))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, int(eval.Evaluate(b)), 0)
}

func TestMaterialDrawKingVsKing(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, board.MaterialDraw(b))
	assert.Equal(t, eval.Score(0), eval.Evaluate(b))
}

func TestMaterialDrawKingAndMinorVsKing(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, board.MaterialDraw(b))
}

func TestMaterialDrawFalseWithRooks(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, board.MaterialDraw(b))
}
