package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"fmt"
)

type Option func(c *config)

type config struct {
	depth      int
	iterations int
	goroutines int
	seed       uint64
	evaluator  game.Evaluator
	metrics    metrics.Collector
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:      meta.DEFAULT_DEPTH,
		iterations: meta.DEFAULT_ITERATIONS,
		goroutines: 1,
		seed:       meta.DEFAULT_SEED,
		evaluator:  game.DefaultEvaluator,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithDepth bounds alpha-beta and PVS recursion.
func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

// WithIterations sets the MCTS iteration budget.
func WithIterations(iterations int) Option {
	return func(c *config) {
		c.iterations = iterations
	}
}

// WithGoroutines searches top-level candidate columns in parallel.
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

// WithSeed seeds the MCTS rollout policy.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(c *config) {
		if evaluator != nil {
			c.evaluator = evaluator
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func (c config) mustHaveDepth() {
	if c.depth < 1 {
		panic(fmt.Sprintf("search depth must be positive, got %d", c.depth))
	}
}

func (c config) mustHaveIterations() {
	if c.iterations < 1 {
		panic(fmt.Sprintf("search iterations must be positive, got %d", c.iterations))
	}
}
