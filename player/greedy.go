package player

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// Greedy plays the column whose resulting state the evaluator likes best,
// looking one move ahead.
type Greedy struct {
	evaluator game.Evaluator
	metrics   metrics.Collector
}

func NewGreedy(evaluator game.Evaluator, collector metrics.Collector) *Greedy {
	if evaluator == nil {
		evaluator = game.DefaultEvaluator
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Greedy{evaluator: evaluator, metrics: collector}
}

// ChooseMove keeps the first column with the strictly greatest score.
func (g *Greedy) ChooseMove(state *game.State) int {
	g.metrics.Start("greedy", 1, 1, 0)

	moves := state.ValidMoves()
	best, bestScore := moves[0], 0.0
	for i, column := range moves {
		next := state.Copy()
		next.PlayMove(column)
		score := g.evaluator.Evaluate(next, state.CurrentPlayer)
		g.metrics.AddNode()
		if i == 0 || score > bestScore {
			best, bestScore = column, score
		}
	}
	return best
}
