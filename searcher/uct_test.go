package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCT(t *testing.T) {
	t.Run("combining win rate and exploration", func(t *testing.T) {
		got := newUCT(CSquared, 50).evaluate(3, 12)

		want := 3.0/12 + math.Sqrt2*math.Sqrt(math.Log(50)/12)
		require.InDelta(t, want, got, 1e-9)
	})

	t.Run("vanishing exploration after a single parent visit", func(t *testing.T) {
		require.Equal(t, 0.5, newUCT(CSquared, 1).evaluate(1, 2), "ln(1) is zero")
	})

	t.Run("favoring rarely visited children", func(t *testing.T) {
		policy := newUCT(CSquared, 40)

		require.Greater(t, policy.evaluate(1, 2), policy.evaluate(10, 20), "Equal win rates should prefer fewer visits")
	})

	t.Run("panicking without visits", func(t *testing.T) {
		require.Panics(t, func() { newUCT(CSquared, 0) })
		require.Panics(t, func() { newUCT(CSquared, 10).evaluate(0, 0) })
	})
}
