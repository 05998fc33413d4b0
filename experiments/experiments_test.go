package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("tallying and storing every game", func(t *testing.T) {
		greedy := metrics.AgentConfig{ID: 1, Kind: "greedy"}
		random := metrics.AgentConfig{ID: 2, Kind: "random", Seed: 5}
		writer, err := metrics.NewWriter(t.TempDir(), "smoke")
		require.NoError(t, err)

		tallies, err := Run("smoke", []metrics.AgentConfig{greedy, random}, []MatchUp{{Agent1: greedy, Agent2: random}}, 4, writer)

		require.NoError(t, err)
		require.Len(t, tallies, 1)
		tally := tallies[0]
		require.Equal(t, 1, tally.Agent1)
		require.Equal(t, 2, tally.Agent2)
		require.Equal(t, 4, tally.Agent1Wins+tally.Agent2Wins+tally.Ties)

		configs := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Len(t, configs, 3)
		require.Equal(t, []string{"1", "greedy", "0", "0", "0", "0", ""}, configs[1])

		games := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, games, 5)
		require.Equal(t, "1", games[1][1], "Agent 1 starts the first game")
		require.Equal(t, "2", games[2][1], "Agent 2 starts the second game")
		greedyWins := 0
		for _, row := range games[1:] {
			starter, winner := row[1], row[4]
			if (starter == "1" && winner == "first") || (starter == "2" && winner == "second") {
				greedyWins++
			}
		}
		require.Equal(t, greedyWins, tally.Agent1Wins, "Wins should follow the agent, not the color")

		moves := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, moves, 1+tally.Moves, "One move record per applied move")
		require.Equal(t, "greedy", moves[1][5])
		require.Equal(t, "7", moves[1][10], "Greedy scores every column of the empty board")

		tallyRows := readCSV(t, filepath.Join(writer.Dir(), "tallies.csv"))
		require.Len(t, tallyRows, 2)
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		_, err := Run("negative", nil, nil, -1, nil)
		require.Error(t, err)

		bad := metrics.AgentConfig{ID: 1, Kind: "oracle"}
		_, err = Run("bad", nil, []MatchUp{{Agent1: bad, Agent2: bad}}, 1, nil)
		require.Error(t, err)
	})
}

func TestMatchUps(t *testing.T) {
	configs, matchUps := StrategyMatchUps()
	require.Len(t, configs, 4)
	require.Len(t, matchUps, 6, "Every pair of strategies plays once")

	configs, matchUps = ParallelMatchUps(3)
	require.Len(t, configs, 4)
	for _, m := range matchUps {
		require.Equal(t, 0, m.Agent1.ID, "Baseline plays every matchup")
		require.Equal(t, 3, m.Agent2.Depth)
	}
}

func TestRunThroughput(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "alphabeta", Depth: 2},
		{ID: 2, Kind: "alphabeta", Depth: 2, Goroutines: 4},
		{ID: 3, Kind: "mcts", Iterations: 50},
	}

	results, err := RunThroughput(configs, game.NewState(game.First), 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Positive(t, results[0].Nodes)
	require.Positive(t, results[1].Nodes)
	require.Equal(t, 4, results[1].Goroutines)
	require.Equal(t, 50, results[2].Nodes, "Every MCTS iteration ends in a full playout")
}
