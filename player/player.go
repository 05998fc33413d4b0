package player

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"fmt"
)

// Player picks a column for the player to move in state. The returned column
// is always valid for state, and state is never mutated.
type Player interface {
	ChooseMove(state *game.State) int
}

type Kind string

const (
	KindGreedy    Kind = "greedy"
	KindAlphaBeta Kind = "alphabeta"
	KindPVS       Kind = "pvs"
	KindMCTS      Kind = "mcts"
	KindRandom    Kind = "random"
	KindHuman     Kind = "human"
)

// Kinds lists every kind New understands.
var Kinds = []Kind{KindGreedy, KindAlphaBeta, KindPVS, KindMCTS, KindRandom, KindHuman}

func (k Kind) Valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Evaluator names accepted by Spec.Evaluator.
const (
	EvaluatorSegments = "segments"
	EvaluatorCenter   = "center"
)

// Spec describes a player independently of how it is built. Zero values fall
// back to the defaults in meta.
type Spec struct {
	Kind       Kind
	Depth      int
	Iterations int
	Goroutines int
	Seed       uint64
	Evaluator  string
}

// LookupEvaluator resolves an evaluator name; the empty name is the segment
// heuristic.
func LookupEvaluator(name string) (game.Evaluator, error) {
	switch name {
	case "", EvaluatorSegments:
		return game.DefaultEvaluator, nil
	case EvaluatorCenter:
		return game.CenterEvaluator, nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}

type Option func(o *options)

type options struct {
	prompter  Prompter
	collector metrics.Collector
}

// WithPrompter supplies the input source for human players.
func WithPrompter(prompter Prompter) Option {
	return func(o *options) {
		o.prompter = prompter
	}
}

// WithCollector records a SearchMetric for every decision.
func WithCollector(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.collector = collector
		}
	}
}

// New builds the player described by spec.
func New(spec Spec, opts ...Option) (Player, error) {
	o := options{collector: metrics.NewDummyCollector()}
	for _, opt := range opts {
		opt(&o)
	}

	evaluator, err := LookupEvaluator(spec.Evaluator)
	if err != nil {
		return nil, err
	}
	if spec.Depth == 0 {
		spec.Depth = meta.DEFAULT_DEPTH
	}
	if spec.Iterations == 0 {
		spec.Iterations = meta.DEFAULT_ITERATIONS
	}
	if spec.Seed == 0 {
		spec.Seed = meta.DEFAULT_SEED
	}
	if spec.Depth < 0 || spec.Iterations < 0 {
		return nil, fmt.Errorf("player %s: depth and iterations must be positive", spec.Kind)
	}

	switch spec.Kind {
	case KindGreedy:
		return NewGreedy(evaluator, o.collector), nil
	case KindAlphaBeta:
		return NewAlphaBeta(searchOptions(spec, evaluator, o.collector)...), nil
	case KindPVS:
		return NewPVS(searchOptions(spec, evaluator, o.collector)...), nil
	case KindMCTS:
		return NewMCTS(searchOptions(spec, evaluator, o.collector)...), nil
	case KindRandom:
		return NewRandom(spec.Seed, o.collector), nil
	case KindHuman:
		if o.prompter == nil {
			return nil, fmt.Errorf("player %s: no prompter", spec.Kind)
		}
		return NewHuman(o.prompter, o.collector), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", spec.Kind)
	}
}
