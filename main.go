package main

import (
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/player"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.PathEnv), "Path to configuration file")
	mode := flag.String("mode", "play", "play, bench, parallel or throughput")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg)

	switch *mode {
	case "play":
		err = play(cfg)
	case "bench":
		configs, matchUps := experiments.StrategyMatchUps()
		err = bench(cfg, "strategies", configs, matchUps)
	case "parallel":
		configs, matchUps := experiments.ParallelMatchUps(cfg.First.Depth)
		err = bench(cfg, "parallel", configs, matchUps)
	case "throughput":
		configs, _ := experiments.ParallelMatchUps(cfg.First.Depth)
		_, err = experiments.RunThroughput(configs, cfg.NewState(), 3)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func setupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// play runs one game between the configured players, printing the board
// after every move.
func play(cfg *config.Config) error {
	prompter := player.WithPrompter(player.NewReaderPrompter(os.Stdin, os.Stdout))
	first, err := player.New(cfg.First.Spec(), prompter)
	if err != nil {
		return fmt.Errorf("first player: %w", err)
	}
	second, err := player.New(cfg.Second.Spec(), prompter)
	if err != nil {
		return fmt.Errorf("second player: %w", err)
	}

	state := cfg.NewState()
	fmt.Print(state)
	e := engine.New(first, second, state, engine.WithObserver(func(u engine.Update) {
		fmt.Printf("\n%s player drops into column %d\n%s", u.Player, u.Column, u.State)
	}))

	result, err := e.Run()
	if err != nil {
		return err
	}
	if result.Outcome.IsTie() {
		fmt.Printf("\nTie after %d moves\n", result.Moves)
	} else {
		fmt.Printf("\n%s player wins after %d moves\n", result.Winner, result.Moves)
	}
	return nil
}

func bench(cfg *config.Config, name string, configs []metrics.AgentConfig, matchUps []experiments.MatchUp) error {
	writer, err := metrics.NewWriter(cfg.Bench.Output, name)
	if err != nil {
		return err
	}
	tallies, err := experiments.Run(name, configs, matchUps, cfg.Bench.Games, writer)
	if err != nil {
		return err
	}
	for _, t := range tallies {
		fmt.Printf("agent %d vs agent %d: %d-%d, %d ties, %d moves\n", t.Agent1, t.Agent2, t.Agent1Wins, t.Agent2Wins, t.Ties, t.Moves)
	}
	return nil
}
