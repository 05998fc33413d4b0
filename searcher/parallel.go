package searcher

import (
	"connect4/game"

	"golang.org/x/sync/errgroup"
)

// searchRoot scores every valid column of state on its own clone, running up
// to goroutines workers at once. Workers only report their (column, score)
// pair; the best column is chosen afterwards in ascending column order.
func searchRoot(state *game.State, goroutines int, score func(next *game.State) float64) Result {
	moves := state.ValidMoves()
	results := make([]Result, len(moves))

	var g errgroup.Group
	g.SetLimit(goroutines)
	for i, column := range moves {
		next := child(state, column)
		g.Go(func() error {
			results[i] = Result{Column: column, Score: score(next)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	return best(results)
}
