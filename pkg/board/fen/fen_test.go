package fen_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, tt := range tests {
		b, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(b))
		require.NoError(t, b.CheckBoard())
	}
}

func TestDecodeDefaultsClockAndMoveNumber(t *testing.T) {
	b, err := fen.Decode("8/8/8/8/8/8/8/K6k w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, b.FiftyMove)
	assert.Equal(t, 1, b.FullMoveCount)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", // missing rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Error(t, err, tt)
	}
}
