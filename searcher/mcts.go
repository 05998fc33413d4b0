package searcher

import (
	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS is UCT Monte Carlo Tree Search with uniformly random playouts. The
// tree is rebuilt from scratch for every decision.
type MCTS struct {
	config
	rand *rand.Rand
}

func NewMCTS(options ...Option) *MCTS {
	c := newConfig(options)
	c.mustHaveIterations()
	return &MCTS{
		config: c,
		rand:   rand.New(rand.NewSource(c.seed)),
	}
}

func (m *MCTS) FindMove(state *game.State) int {
	column, _ := m.Search(state)
	return column
}

// Search runs the iteration budget and returns the chosen column along with
// the statistics of every root child.
func (m *MCTS) Search(state *game.State) (int, []ChildStat) {
	mustBeOpen(state)
	m.metrics.Start("mcts", 1, 0, m.iterations)

	t := newTree(state)
	for i := 0; i < m.iterations; i++ {
		m.simulate(t)
		m.metrics.AddEpisode()
	}

	column := t.findBestMove()
	log.Debug().Msgf("mcts picked column %d after %d iterations (%d nodes)", column, m.iterations, len(t.nodes))
	return column, t.rootStats()
}

func (m *MCTS) simulate(t *tree) {
	leaf := t.selectLeaf()
	newNode := t.expand(leaf)
	winner := m.rollout(t.nodes[newNode].state)
	t.backup(newNode, winner)
}

// rollout plays uniformly random moves on a clone until the game ends.
func (m *MCTS) rollout(state *game.State) game.Player {
	state = state.Copy()
	outcome := state.CheckWin()
	for !outcome.Ended {
		moves := state.ValidMoves()
		move := moves[m.rand.Intn(len(moves))] // Random rollout policy
		state.PlayMove(move)
		state.SwitchTurn()
		outcome = state.CheckWin()
	}
	m.metrics.AddFullPlayout()
	return outcome.Winner
}
