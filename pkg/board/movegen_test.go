package board_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Node counts per spec §8 scenario 1 (standard start position).
func TestPerftStartPosition(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.nodes, b.Perft(tt.depth), "depth %v", tt.depth)
	}
}

// Node count per spec §8 scenario 2 (the "Kiwipete" position, which stresses castling,
// promotions and en-passant generation).
func TestPerftKiwipete(t *testing.T) {
	b, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, int64(48), b.Perft(1))
	assert.Equal(t, int64(2039), b.Perft(2))
	assert.Equal(t, int64(97862), b.Perft(3))
}
