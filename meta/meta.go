// meta/meta.go
package meta

// DEFAULT_DEPTH defines the recursion depth of alpha-beta and PVS.
const DEFAULT_DEPTH = 4

// DEFAULT_ITERATIONS defines the number of MCTS iterations per move.
const DEFAULT_ITERATIONS = 300

// DEFAULT_SEED seeds random players and rollouts when none is configured.
const DEFAULT_SEED = 1

// EXPERIMENT_GAMES defines the number of games per matchup, half with each
// agent starting.
const EXPERIMENT_GAMES = 12
