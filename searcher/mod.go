package searcher

import (
	"connect4/game"
	"math"
)

// Searcher picks a column for the player to move. Implementations never
// mutate the state they are given.
type Searcher interface {
	FindMove(state *game.State) int
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Result is the outcome of searching one top-level candidate column.
type Result struct {
	Column int
	Score  float64
}

// best returns the first result with the strictly greatest score, so ties go
// to the lowest column.
func best(results []Result) Result {
	if len(results) == 0 {
		panic("no results to choose from")
	}
	top := results[0]
	for _, r := range results[1:] {
		if r.Score > top.Score {
			top = r
		}
	}
	return top
}

// child returns a clone of state after the mover drops a piece in column.
func child(state *game.State, column int) *game.State {
	next := state.Copy()
	if !next.PlayMove(column) {
		panic("searching an invalid column")
	}
	next.SwitchTurn()
	return next
}

func mustBeOpen(state *game.State) {
	if state.IsOver() {
		panic("cannot search a finished game")
	}
}
