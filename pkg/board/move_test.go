package board_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestMovePacksAndUnpacksFields(t *testing.T) {
	from := sq(board.FileE, board.Rank2)
	to := sq(board.FileD, board.Rank3)
	m := board.NewMove(from, to, board.BP, board.WQ, false, false, false)

	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, board.BP, m.Captured())
	assert.Equal(t, board.WQ, m.Promoted())
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsPromotion())
	assert.False(t, m.IsCastle())
	assert.Equal(t, "e2d3q", m.String())
}

func TestParseUCI(t *testing.T) {
	from, to, promo, err := board.ParseUCI("e7e8q")
	assert.NoError(t, err)
	assert.Equal(t, sq(board.FileE, board.Rank7), from)
	assert.Equal(t, sq(board.FileE, board.Rank8), to)
	assert.Equal(t, board.WQ, promo)

	_, _, _, err = board.ParseUCI("e7e8x")
	assert.Error(t, err)

	_, _, _, err = board.ParseUCI("e7")
	assert.Error(t, err)
}

func TestNoMoveString(t *testing.T) {
	assert.Equal(t, "0000", board.NoMove.String())
}
