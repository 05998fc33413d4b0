package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func parse(t *testing.T, current game.Player, rows ...string) *game.State {
	t.Helper()
	s, err := game.ParseState(rows, current)
	require.NoError(t, err)
	return s
}

// immediateWin has First to move and winning in column 3.
func immediateWin(t *testing.T) *game.State {
	return parse(t, game.First,
		".......",
		".......",
		".......",
		".......",
		"....O..",
		"XXX.OO.",
	)
}

// doubleThreat has First to move against two open ends of Second's three.
func doubleThreat(t *testing.T) *game.State {
	return parse(t, game.First,
		".......",
		".......",
		".......",
		".......",
		".....X.",
		".OOO.XX",
	)
}

// randomPositions plays a few random moves from an empty board, keeping only
// positions where the game is still open.
func randomPositions(t *testing.T, seed uint64, count int) []*game.State {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	positions := []*game.State{}
	for len(positions) < count {
		s := game.NewState(game.First)
		plies := r.Intn(14)
		for i := 0; i < plies && !s.IsOver(); i++ {
			moves := s.ValidMoves()
			require.NoError(t, s.Play(moves[r.Intn(len(moves))]))
		}
		if !s.IsOver() {
			positions = append(positions, s)
		}
	}
	return positions
}
