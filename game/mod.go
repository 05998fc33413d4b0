package game

import (
	"errors"
	"math"
)

// Player identifies the owner of a cell. None doubles as the empty cell and
// as "no winner" in an Outcome.
type Player int8

const (
	None Player = iota
	First
	Second
)

// NoMove is returned by searches at leaf nodes, where no column was chosen.
const NoMove = -1

// WinLength is the number of aligned pieces that wins the game.
const WinLength = 4

// ErrInvalidMove reports a column that is out of range or full.
var ErrInvalidMove = errors.New("invalid move")

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

func (p Player) symbol() byte {
	switch p {
	case First:
		return 'X'
	case Second:
		return 'O'
	default:
		return '.'
	}
}

// Outcome reports whether the game ended. Ended with Winner None is a tie.
type Outcome struct {
	Ended  bool
	Winner Player
}

func (o Outcome) IsTie() bool {
	return o.Ended && o.Winner == None
}

// Evaluator scores a state from the perspective of a player. Decisive states
// score +Inf or -Inf so that pruning comparisons stay exact.
type Evaluator interface {
	Evaluate(state *State, perspective Player) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(state *State, perspective Player) float64

func (f EvaluatorFunc) Evaluate(state *State, perspective Player) float64 {
	return f(state, perspective)
}

var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)
