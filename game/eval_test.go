package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateSegments(t *testing.T) {
	t.Run("scoring decided states", func(t *testing.T) {
		won := mustParse(t, []string{
			".......",
			".......",
			"...X...",
			"...X...",
			"...XO..",
			"...XOO.",
		}, Second)
		tie := mustParse(t, tieBoard, First)

		require.Equal(t, math.Inf(1), EvaluateSegments(won, First))
		require.Equal(t, math.Inf(-1), EvaluateSegments(won, Second))
		require.Equal(t, 0.0, EvaluateSegments(tie, First))
		require.Equal(t, 0.0, EvaluateSegments(tie, Second))
	})

	t.Run("scoring open segments", func(t *testing.T) {
		s := NewState(First)
		require.NoError(t, s.Play(0))

		// One horizontal, one vertical and one anti-diagonal segment hold the piece.
		require.Equal(t, 3.0, EvaluateSegments(s, First))
		require.Equal(t, -3.0, EvaluateSegments(s, Second))
	})

	t.Run("returning finite scores for open states", func(t *testing.T) {
		s := NewState(First)
		for _, column := range []int{3, 3, 2, 4, 4, 2} {
			require.NoError(t, s.Play(column))
		}
		require.False(t, s.IsOver())

		for _, perspective := range []Player{First, Second} {
			score := EvaluateSegments(s, perspective)
			require.False(t, math.IsInf(score, 0), "Open state without threats should score finitely")
		}
	})

	t.Run("forcing a loss when the opponent wins next", func(t *testing.T) {
		s := mustParse(t, []string{
			".......",
			".......",
			".......",
			".......",
			".......",
			"OOO.XX.",
		}, First)
		require.False(t, s.IsOver())

		require.Equal(t, math.Inf(-1), EvaluateSegments(s, First), "First cannot ignore Second's open three")
		require.False(t, math.IsInf(EvaluateSegments(s, Second), 0), "First has no immediate win")
	})
}

func TestEvaluateCenterWeighted(t *testing.T) {
	s := NewState(First)
	require.NoError(t, s.Play(3))

	require.Equal(t, EvaluateSegments(s, First)+3, EvaluateCenterWeighted(s, First))
	require.Equal(t, EvaluateSegments(s, Second)-3, EvaluateCenterWeighted(s, Second))
}

func TestSegmentRun(t *testing.T) {
	s := mustParse(t, []string{
		"....",
		"....",
		"O...",
		"X.XX",
	}, First)
	var bottom Segment
	for _, segment := range s.Segments() {
		if segment.Direction == Horizontal && segment.Cells[0] == s.geometry.index(3, 0) {
			bottom = segment
		}
	}

	owner, run := segmentRun(s, bottom)
	require.Equal(t, First, owner)
	require.Equal(t, 2, run, "Longest run should skip the gap")

	left := Segment{Direction: Vertical, Cells: [WinLength]int{0, 4, 8, 12}}
	owner, run = segmentRun(s, left)
	require.Equal(t, None, owner, "Contested segments have no owner")
	require.Equal(t, 0, run)
}

func TestCanWinNext(t *testing.T) {
	s := mustParse(t, []string{
		".......",
		".......",
		".......",
		"X......",
		"X......",
		"X..OO..",
	}, Second)

	require.True(t, CanWinNext(s, First), "First wins by stacking column 0")
	require.False(t, CanWinNext(s, Second))
	require.Equal(t, 0, s.Height(1), "Probing should not mutate the state")
}
