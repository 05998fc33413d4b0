package player

import (
	"connect4/experiments/metrics"
	"connect4/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random valid column.
type Random struct {
	rand    *rand.Rand
	metrics metrics.Collector
}

func NewRandom(seed uint64, collector metrics.Collector) *Random {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Random{
		rand:    rand.New(rand.NewSource(seed)),
		metrics: collector,
	}
}

func (r *Random) ChooseMove(state *game.State) int {
	r.metrics.Start("random", 1, 0, 0)
	moves := state.ValidMoves()
	return moves[r.rand.Intn(len(moves))]
}
