package searcher

import (
	"connect4/game"
)

// node is one position in an MCTS tree. Links are arena indices; the parent
// index does not own anything.
type node struct {
	parent   int // -1 at the root
	state    *game.State
	moves    []int // frozen at creation, empty once the game is over
	children []int // arena indices in creation (= ascending column) order
	columns  []int // columns[i] leads to children[i]
	visits   int
	wins     int
}

// tree is a flat growable arena of nodes rooted at index 0. It lives for a
// single move decision.
type tree struct {
	nodes []node
}

func newTree(state *game.State) *tree {
	t := &tree{}
	t.add(-1, state.Copy())
	return t
}

func (t *tree) add(parent int, state *game.State) int {
	var moves []int
	if !state.IsOver() {
		moves = state.ValidMoves()
	}
	t.nodes = append(t.nodes, node{
		parent: parent,
		state:  state,
		moves:  moves,
	})
	return len(t.nodes) - 1
}

// child returns the node reached from n by column.
func (t *tree) child(n, column int) (int, bool) {
	for i, c := range t.nodes[n].columns {
		if c == column {
			return t.nodes[n].children[i], true
		}
	}
	return 0, false
}

// isLeaf reports whether selection stops at n: it is unvisited, has no
// moves, or still has a move without a child.
func (t *tree) isLeaf(n int) bool {
	nd := &t.nodes[n]
	return nd.visits == 0 || len(nd.moves) == 0 || len(nd.children) < len(nd.moves)
}

// selectLeaf descends from the root by maximum UCT.
func (t *tree) selectLeaf() int {
	n := 0
	for !t.isLeaf(n) {
		n = t.pickChild(n)
	}
	return n
}

// pickChild returns the child with the highest UCT; ties go to the earliest
// created child.
func (t *tree) pickChild(n int) int {
	parent := &t.nodes[n]
	policy := newUCT(CSquared, parent.visits)

	best, bestScore := -1, negInf
	for _, c := range parent.children {
		nd := &t.nodes[c]
		score := policy.evaluate(nd.wins, nd.visits)
		if best == -1 || score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// expand adds a child for the lowest column without one and returns it. A
// node with nothing left to expand is returned unchanged.
func (t *tree) expand(n int) int {
	nd := &t.nodes[n]
	if len(nd.children) == len(nd.moves) {
		return n
	}
	column := nd.moves[len(nd.children)]
	c := t.add(n, child(nd.state, column))

	nd = &t.nodes[n] // add may have moved the arena
	nd.children = append(nd.children, c)
	nd.columns = append(nd.columns, column)
	return c
}

// backup records a finished playout from n up to the root. A node gains a
// win whenever the winner is not the player to move there, crediting the
// player who moved into it.
func (t *tree) backup(n int, winner game.Player) {
	for n != -1 {
		nd := &t.nodes[n]
		nd.visits++
		if winner != nd.state.CurrentPlayer {
			nd.wins++
		}
		n = nd.parent
	}
}

// ChildStat summarizes a root child after a search.
type ChildStat struct {
	Column int
	Visits int
	Wins   int
}

func (t *tree) rootStats() []ChildStat {
	root := &t.nodes[0]
	stats := make([]ChildStat, len(root.children))
	for i, c := range root.children {
		stats[i] = ChildStat{
			Column: root.columns[i],
			Visits: t.nodes[c].visits,
			Wins:   t.nodes[c].wins,
		}
	}
	return stats
}

// findBestMove returns the most visited root column, ties going to the lowest
// column.
func (t *tree) findBestMove() int {
	stats := t.rootStats()
	if len(stats) == 0 {
		panic("node has no children")
	}

	best := stats[0]
	for _, s := range stats[1:] {
		if s.Visits > best.Visits || (s.Visits == best.Visits && s.Column < best.Column) {
			best = s
		}
	}
	return best.Column
}
