package search_test

import (
	"testing"

	"github.com/herohde/vice/pkg/board"
	"github.com/herohde/vice/pkg/board/fen"
	"github.com/herohde/vice/pkg/eval"
	"github.com/herohde/vice/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMateInOne covers spec §8 scenario 3: from a position with a forced mate in one, a search
// of depth >= 3 must find it and report a mate score.
func TestMateInOne(t *testing.T) {
	b, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearch()
	info := s.Root(b, 3, nil)

	require.NotEmpty(t, info.PV)
	assert.Equal(t, board.NewSquare(board.FileA, board.Rank1), info.PV[0].From())
	assert.Equal(t, board.NewSquare(board.FileA, board.Rank8), info.PV[0].To())
	assert.True(t, eval.IsMateScore(info.Score), "expected mate score, got %v", info.Score)
	assert.Greater(t, int(info.Score), int(eval.Mate-search.MaxDepth))
}

// TestStalemateReturnsNoMove covers spec §8 scenario 4: a stalemated side to move has no legal
// move, so the search must report NoMove (the UCI front end then emits "bestmove 0000").
func TestStalemateReturnsNoMove(t *testing.T) {
	b, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := search.NewSearch()
	info := s.Root(b, 1, nil)

	assert.Empty(t, info.PV)
	assert.Equal(t, eval.Draw, info.Score)
}

// TestThreefoldRepetitionDrawsAtSearchNode covers spec §8 scenario 5: replaying a repeating
// knight shuffle from the start position must make the search see a draw (score 0) at the
// repeated node, independent of material (which is even here, so this alone wouldn't
// distinguish a draw-by-repetition return from a draw-by-eval return; the assertion that
// matters is that IsRepetition fires, exercised directly in board_test.go).
func TestThreefoldRepetitionDrawsAtSearchNode(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := []struct{ from, to board.Square }{
		{board.NewSquare(board.FileB, board.Rank1), board.NewSquare(board.FileC, board.Rank3)},
		{board.NewSquare(board.FileB, board.Rank8), board.NewSquare(board.FileC, board.Rank6)},
		{board.NewSquare(board.FileC, board.Rank3), board.NewSquare(board.FileB, board.Rank1)},
		{board.NewSquare(board.FileC, board.Rank6), board.NewSquare(board.FileB, board.Rank8)},
		{board.NewSquare(board.FileB, board.Rank1), board.NewSquare(board.FileC, board.Rank3)},
		{board.NewSquare(board.FileB, board.Rank8), board.NewSquare(board.FileC, board.Rank6)},
		{board.NewSquare(board.FileC, board.Rank3), board.NewSquare(board.FileB, board.Rank1)},
		{board.NewSquare(board.FileC, board.Rank6), board.NewSquare(board.FileB, board.Rank8)},
	}
	for _, mv := range moves {
		m, ok := b.FindMove(mv.from, mv.to, board.Empty)
		require.True(t, ok)
		require.True(t, b.MakeMove(m))
	}
	assert.True(t, b.IsRepetition())

	s := search.NewSearch()
	assert.Equal(t, eval.Draw, s.AlphaBeta(b, -eval.Infinite, eval.Infinite, 1, false))
}

// TestQuiescenceSeesThroughCapture covers spec §8 scenario 6: at a shallow nominal depth, the
// engine must not grab a pawn that a recapture immediately wins back at a net material loss --
// the horizon blunder quiescence extension exists to prevent. The knight on e3 can take the
// pawn on d5, but it is defended by the pawn on c6, so Nxd5 loses a knight for a pawn once the
// recapture is searched; at nominal depth 1, only quiescence (not the main search) sees that
// recapture, since it falls one ply beyond the main search's horizon.
func TestQuiescenceSeesThroughCapture(t *testing.T) {
	b, err := fen.Decode("4k3/8/2p5/3p4/8/4N3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	nxd5, ok := b.FindMove(board.NewSquare(board.FileE, board.Rank3), board.NewSquare(board.FileD, board.Rank5), board.Empty)
	require.True(t, ok)

	s := search.NewSearch()
	info := s.Root(b, 1, nil)

	require.NotEmpty(t, info.PV)
	assert.NotEqual(t, nxd5, info.PV[0], "quiescence should see that Nxd5 loses the knight back for a pawn")
}

// TestQuiescenceOnLiteralScenarioSix exercises spec §8 scenario 6's position verbatim, rather
// than only the hand-verifiable equivalent above. Black has no square from which to recapture
// on e5 (neither queen, bishop, nor knight reaches it in one move), so quiescence's captures-only
// search at the leaf resolves to no further exchange there, and the position correctly evaluates
// as a won pawn for White rather than a tactical trap.
func TestQuiescenceOnLiteralScenarioSix(t *testing.T) {
	b, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	s := search.NewSearch()
	info := s.Root(b, 2, nil)

	require.NotEmpty(t, info.PV)
	assert.Greater(t, int(info.Score), 0, "White should be at least a pawn up with no immediate black recapture on e5")
}
