package player

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

// Search adapts a searcher to the Player interface.
type Search struct {
	searcher.Searcher
}

func (s *Search) ChooseMove(state *game.State) int {
	return s.FindMove(state)
}

func NewAlphaBeta(options ...searcher.Option) *Search {
	return &Search{Searcher: searcher.NewAlphaBeta(options...)}
}

func NewPVS(options ...searcher.Option) *Search {
	return &Search{Searcher: searcher.NewPVS(options...)}
}

func NewMCTS(options ...searcher.Option) *Search {
	return &Search{Searcher: searcher.NewMCTS(options...)}
}

func searchOptions(spec Spec, evaluator game.Evaluator, collector metrics.Collector) []searcher.Option {
	return []searcher.Option{
		searcher.WithDepth(spec.Depth),
		searcher.WithIterations(spec.Iterations),
		searcher.WithGoroutines(spec.Goroutines),
		searcher.WithSeed(spec.Seed),
		searcher.WithEvaluator(evaluator),
		searcher.WithMetrics(collector),
	}
}
