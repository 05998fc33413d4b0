package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Throughput is the search effort of one agent deciding a single position.
type Throughput struct {
	Agent      int
	Goroutines int
	Nodes      int // nodes for alpha-beta and PVS, playouts for MCTS
	Duration   time.Duration
}

func (t Throughput) PerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Nodes) / t.Duration.Seconds()
}

// RunThroughput lets every agent decide state repeats times and keeps the
// average effort per decision.
func RunThroughput(configs []metrics.AgentConfig, state *game.State, repeats int) ([]Throughput, error) {
	if repeats < 1 {
		return nil, fmt.Errorf("throughput: repeats must be positive, got %d", repeats)
	}

	log.Info().Msg("starting throughput experiment...")

	results := []Throughput{}
	for _, config := range configs {
		collector := metrics.NewCollector()
		p, err := createPlayer(config, 0, collector)
		if err != nil {
			return nil, fmt.Errorf("throughput agent %d: %w", config.ID, err)
		}

		total := Throughput{Agent: config.ID, Goroutines: max(config.Goroutines, 1)}
		for i := 0; i < repeats; i++ {
			p.ChooseMove(state.Copy())
			m := collector.Complete()
			total.Nodes += m.Nodes + m.FullPlayouts
			total.Duration += m.Duration
		}
		total.Nodes /= repeats
		total.Duration /= time.Duration(repeats)
		results = append(results, total)

		log.Info().Msgf("agent %d searched %d nodes in %s (%.0f/s)", config.ID, total.Nodes, total.Duration, total.PerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
