package searcher

import (
	"connect4/game"
	"math"

	"github.com/rs/zerolog/log"
)

// PVS is Principal Variation Search in negamax form: every call scores the
// position for its own player to move.
type PVS struct {
	config
}

func NewPVS(options ...Option) *PVS {
	c := newConfig(options)
	c.mustHaveDepth()
	return &PVS{config: c}
}

func (s *PVS) FindMove(state *game.State) int {
	return s.Search(state).Column
}

// Search returns the best column for the player to move and its score.
func (s *PVS) Search(state *game.State) Result {
	mustBeOpen(state)
	s.metrics.Start("pvs", s.goroutines, s.depth, 0)

	root := state.CurrentPlayer
	var result Result
	if s.goroutines > 1 {
		s.metrics.AddNode()
		result = searchRoot(state, s.goroutines, func(next *game.State) float64 {
			_, score := s.Negamax(next, root, negInf, posInf, s.depth-1)
			return -score
		})
	} else {
		column, score := s.Negamax(state, root, negInf, posInf, s.depth)
		result = Result{Column: column, Score: score}
	}

	log.Debug().Msgf("pvs picked column %d with score %v for %s player", result.Column, result.Score, root)
	return result
}

// Negamax returns the best column at state and its score for the player to
// move there. Leaves are evaluated for root and negated when the other player
// is to move, so scores match AlphaBeta exactly.
func (s *PVS) Negamax(state *game.State, root game.Player, alpha, beta float64, depth int) (int, float64) {
	s.metrics.AddNode()
	if depth == 0 || state.IsOver() {
		score := s.evaluator.Evaluate(state, root)
		if state.CurrentPlayer != root {
			score = -score
		}
		return game.NoMove, score
	}

	bestColumn, bestScore := game.NoMove, negInf
	for i, column := range state.ValidMoves() {
		next := child(state, column)

		var score float64
		if i == 0 || depth == 1 || beta-alpha == 1 || math.IsInf(alpha, -1) {
			score = -s.score(next, root, -beta, -alpha, depth-1)
		} else {
			// Null window: only a move that beats alpha needs an exact score.
			score = -s.score(next, root, -alpha-1, -alpha, depth-1)
			if score > alpha && beta-alpha > 1 {
				score = -s.score(next, root, -beta, -alpha, depth-1)
			}
		}

		if bestColumn == game.NoMove || score > bestScore {
			bestColumn, bestScore = column, score
		}
		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return bestColumn, bestScore
}

func (s *PVS) score(state *game.State, root game.Player, alpha, beta float64, depth int) float64 {
	_, score := s.Negamax(state, root, alpha, beta, depth)
	return score
}
