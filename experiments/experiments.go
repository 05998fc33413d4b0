package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/player"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// MatchUp pairs two agents. Agent1 starts the first game of every round.
type MatchUp struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
}

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: string(player.KindGreedy)},
	{ID: 2, Kind: string(player.KindAlphaBeta), Depth: meta.DEFAULT_DEPTH},
	{ID: 3, Kind: string(player.KindPVS), Depth: meta.DEFAULT_DEPTH},
	{ID: 4, Kind: string(player.KindMCTS), Iterations: meta.DEFAULT_ITERATIONS},
}

// StrategyMatchUps pairs every strategy with every other one.
func StrategyMatchUps() ([]metrics.AgentConfig, []MatchUp) {
	matchUps := []MatchUp{}
	for i, config1 := range strategyConfigs {
		for _, config2 := range strategyConfigs[i+1:] {
			matchUps = append(matchUps, MatchUp{Agent1: config1, Agent2: config2})
		}
	}
	return strategyConfigs, matchUps
}

// ParallelMatchUps pairs root-parallel alpha-beta agents against the
// sequential baseline. Scores match, so games measure speed only.
func ParallelMatchUps(depth int) ([]metrics.AgentConfig, []MatchUp) {
	baseline := metrics.AgentConfig{ID: 0, Kind: string(player.KindAlphaBeta), Depth: depth, Goroutines: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := []MatchUp{}
	for i, goroutines := range []int{2, 4, 8} {
		config := metrics.AgentConfig{ID: i + 1, Kind: string(player.KindAlphaBeta), Depth: depth, Goroutines: goroutines}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{Agent1: baseline, Agent2: config})
	}
	return configs, matchUps
}

// Run plays games per matchup, alternating which agent starts, and writes the
// configs, records and tallies when writer is not nil. Zero games means
// meta.EXPERIMENT_GAMES.
func Run(name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, writer *metrics.Writer) ([]metrics.Tally, error) {
	if games == 0 {
		games = meta.EXPERIMENT_GAMES
	}
	if games < 1 {
		return nil, fmt.Errorf("experiment %s: games must be positive, got %d", name, games)
	}

	count := 0
	tallies := []metrics.Tally{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp.Agent1, matchUp.Agent2
		tally := metrics.Tally{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			count++
			first, second := config1, config2
			if i%2 == 1 { // Alternate the starting agent
				first, second = config2, config1
			}

			gameMetric, moveMetrics, err := runGame(first, second, uint64(i))
			if err != nil {
				return nil, fmt.Errorf("experiment %s game %d: %w", name, count, err)
			}

			agent1First := i%2 == 0
			switch {
			case gameMetric.Winner == game.None:
				tally.Ties++
			case (gameMetric.Winner == game.First) == agent1First:
				tally.Agent1Wins++
			default:
				tally.Agent2Wins++
			}
			tally.Moves += gameMetric.TotalMoves

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				agent := first.ID
				if mm.Player == game.Second {
					agent = second.ID
				}
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      agent,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		tallies = append(tallies, tally)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), tally)
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return tallies, nil
	}
	if err := store(writer, configs, gameRecords, moveRecords, tallies); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", name, err)
	}
	return tallies, nil
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, tallies []metrics.Tally) error {
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteTallies(tallies); err != nil {
		return err
	}
	log.Info().Msgf("stored tallies in %s", writer.Dir())
	return nil
}

// runGame plays one game with first moving first. round offsets the seeds so
// repeated rounds of randomized agents differ.
func runGame(first, second metrics.AgentConfig, round uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	collectors := map[game.Player]metrics.Collector{
		game.First:  metrics.NewCollector(),
		game.Second: metrics.NewCollector(),
	}
	p1, err := createPlayer(first, round, collectors[game.First])
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	p2, err := createPlayer(second, round, collectors[game.Second])
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	moveMetrics := []metrics.MoveMetric{}
	e := engine.New(p1, p2, game.NewState(game.First), engine.WithObserver(func(u engine.Update) {
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         u.Step,
			Player:       u.Player,
			Column:       u.Column,
			SearchMetric: collectors[u.Player].Complete(),
		})
	}))

	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	end := time.Now()

	return metrics.GameMetric{
		StartingPlayer: result.StartingPlayer,
		Winner:         result.Winner,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     result.Moves,
	}, moveMetrics, nil
}

func createPlayer(config metrics.AgentConfig, round uint64, collector metrics.Collector) (player.Player, error) {
	seed := config.Seed
	if seed == 0 {
		seed = meta.DEFAULT_SEED
	}
	spec := player.Spec{
		Kind:       player.Kind(config.Kind),
		Depth:      config.Depth,
		Iterations: config.Iterations,
		Goroutines: config.Goroutines,
		Seed:       seed + round,
		Evaluator:  config.Evaluator,
	}
	return player.New(spec, player.WithCollector(collector))
}
