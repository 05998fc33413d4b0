package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphaBetaSearch(t *testing.T) {
	t.Run("taking an immediate win", func(t *testing.T) {
		s := NewAlphaBeta(WithDepth(4))

		got := s.Search(immediateWin(t))

		require.Equal(t, 3, got.Column, "Should complete the bottom row")
		require.Equal(t, math.Inf(1), got.Score, "A forced win should score +Inf")
	})

	t.Run("returning a legal column in a lost position", func(t *testing.T) {
		state := doubleThreat(t)
		s := NewAlphaBeta(WithDepth(3))

		got := s.Search(state)

		require.Equal(t, math.Inf(-1), got.Score, "Both threats cannot be blocked")
		require.Equal(t, state.ValidMoves()[0], got.Column, "Ties should go to the lowest column")
		require.True(t, state.IsValidMove(got.Column))
	})

	t.Run("blocking a single threat", func(t *testing.T) {
		state := parse(t, game.First,
			".......",
			".......",
			".......",
			".......",
			".......",
			"XOOO..X",
		)

		require.Equal(t, 4, NewAlphaBeta(WithDepth(2)).FindMove(state), "Only column 4 stops Second")
	})

	t.Run("leaving the caller's state untouched", func(t *testing.T) {
		state := immediateWin(t)
		before := state.Copy()

		NewAlphaBeta(WithDepth(4)).FindMove(state)

		require.Equal(t, before, state)
	})

	t.Run("returning a leaf score at depth zero", func(t *testing.T) {
		state := game.NewState(game.First)
		s := NewAlphaBeta()

		column, score := s.Minimax(state, game.First, math.Inf(-1), math.Inf(1), 0)

		require.Equal(t, game.NoMove, column)
		require.Equal(t, game.EvaluateSegments(state, game.First), score)
	})

	t.Run("counting visited nodes", func(t *testing.T) {
		collector := metrics.NewCollector()
		s := NewAlphaBeta(WithDepth(2), WithMetrics(collector))

		s.FindMove(game.NewState(game.First))

		got := collector.Complete()
		require.Equal(t, "alphabeta", got.Strategy)
		require.Equal(t, 2, got.Depth)
		require.Greater(t, got.Nodes, 7, "Should visit the root and its children")
		require.LessOrEqual(t, got.Nodes, 1+7+49, "Should not visit more than the full tree")
	})

	t.Run("panicking on invalid configuration or finished games", func(t *testing.T) {
		require.Panics(t, func() { NewAlphaBeta(WithDepth(0)) })

		won := parse(t, game.Second, "....", "....", "....", "XXXX")
		require.Panics(t, func() { NewAlphaBeta().FindMove(won) })
	})
}

func TestAlphaBetaParallelRoot(t *testing.T) {
	for _, state := range randomPositions(t, 11, 8) {
		sequential := NewAlphaBeta(WithDepth(3)).Search(state)
		parallel := NewAlphaBeta(WithDepth(3), WithGoroutines(4)).Search(state)

		require.Equal(t, sequential, parallel, "Root parallelism should not change the result:\n%s", state)
	}
}
