package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting from many goroutines", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 4, 3, 0)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
				}
			}()
		}
		wg.Wait()

		got := c.Complete()
		require.Equal(t, "alphabeta", got.Strategy)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, 400, got.Nodes)
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start("mcts", 1, 0, 10)
		c.AddEpisode()
		c.AddFullPlayout()

		c.Start("mcts", 1, 0, 10)
		c.AddEpisode()

		got := c.Complete()
		require.Equal(t, 1, got.Episodes)
		require.Equal(t, 0, got.FullPlayouts)
		require.Equal(t, 10, got.Iterations)
	})

	t.Run("reporting nothing before start", func(t *testing.T) {
		require.Equal(t, SearchMetric{}, NewCollector().Complete())
	})

	t.Run("ignoring everything in the dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("pvs", 2, 4, 0)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
