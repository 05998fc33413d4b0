package searcher

import (
	"connect4/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is depth-limited minimax with alpha-beta pruning. Scores are
// always from the perspective of the player to move at the root.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	c := newConfig(options)
	c.mustHaveDepth()
	return &AlphaBeta{config: c}
}

func (s *AlphaBeta) FindMove(state *game.State) int {
	return s.Search(state).Column
}

// Search returns the best column for the player to move and its score.
func (s *AlphaBeta) Search(state *game.State) Result {
	mustBeOpen(state)
	s.metrics.Start("alphabeta", s.goroutines, s.depth, 0)

	maximizing := state.CurrentPlayer
	var result Result
	if s.goroutines > 1 {
		s.metrics.AddNode()
		result = searchRoot(state, s.goroutines, func(next *game.State) float64 {
			_, score := s.Minimax(next, maximizing, negInf, posInf, s.depth-1)
			return score
		})
	} else {
		column, score := s.Minimax(state, maximizing, negInf, posInf, s.depth)
		result = Result{Column: column, Score: score}
	}

	log.Debug().Msgf("alpha-beta picked column %d with score %v for %s player", result.Column, result.Score, maximizing)
	return result
}

// Minimax returns the best column at state and its score for maximizing.
// Leaves (depth 0 or a finished game) return game.NoMove.
func (s *AlphaBeta) Minimax(state *game.State, maximizing game.Player, alpha, beta float64, depth int) (int, float64) {
	s.metrics.AddNode()
	if depth == 0 || state.IsOver() {
		return game.NoMove, s.evaluator.Evaluate(state, maximizing)
	}

	moves := state.ValidMoves()
	bestColumn := moves[0]

	if state.CurrentPlayer == maximizing {
		bestScore := negInf
		for _, column := range moves {
			_, score := s.Minimax(child(state, column), maximizing, alpha, beta, depth-1)
			if score > bestScore {
				bestColumn, bestScore = column, score
			}
			alpha = max(alpha, bestScore)
			if alpha >= beta {
				break
			}
		}
		return bestColumn, bestScore
	}

	bestScore := posInf
	for _, column := range moves {
		_, score := s.Minimax(child(state, column), maximizing, alpha, beta, depth-1)
		if score < bestScore {
			bestColumn, bestScore = column, score
		}
		beta = min(beta, bestScore)
		if alpha >= beta {
			break
		}
	}
	return bestColumn, bestScore
}
