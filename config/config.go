package config

import (
	"connect4/game"
	"connect4/player"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

// PathEnv names the variable holding the config file path when no -config
// flag is given.
const PathEnv = "CONNECT4_CONFIG"

type Player struct {
	Kind       string `yaml:"kind" env:"KIND" env-default:"alphabeta"`
	Depth      int    `yaml:"depth" env:"DEPTH" env-default:"4"`
	Iterations int    `yaml:"iterations" env:"ITERATIONS" env-default:"300"`
	Goroutines int    `yaml:"goroutines" env:"GOROUTINES" env-default:"1"`
	Seed       uint64 `yaml:"seed" env:"SEED" env-default:"1"`
	Evaluator  string `yaml:"evaluator" env:"EVALUATOR" env-default:"segments"`
}

type Config struct {
	Board struct {
		Rows     int    `yaml:"rows" env:"ROWS" env-default:"6"`
		Columns  int    `yaml:"columns" env:"COLUMNS" env-default:"7"`
		Starting string `yaml:"starting" env:"STARTING" env-default:"first"`
	} `yaml:"board" env-prefix:"CONNECT4_BOARD_"`

	First  Player `yaml:"first" env-prefix:"CONNECT4_FIRST_"`
	Second Player `yaml:"second" env-prefix:"CONNECT4_SECOND_"`

	Bench struct {
		Games  int    `yaml:"games" env:"GAMES" env-default:"12"`
		Output string `yaml:"output" env:"OUTPUT" env-default:"results"`
	} `yaml:"bench" env-prefix:"CONNECT4_BENCH_"`

	Log struct {
		Level  string `yaml:"level" env:"LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"FORMAT" env-default:"console"` // console or json
	} `yaml:"log" env-prefix:"CONNECT4_LOG_"`
}

// Load reads the YAML file at path, letting the environment override it.
// Without a path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Columns < 1 {
		return fmt.Errorf("invalid board size %dx%d", c.Board.Rows, c.Board.Columns)
	}
	if _, err := parsePlayer(c.Board.Starting); err != nil {
		return err
	}
	if err := c.First.validate(); err != nil {
		return fmt.Errorf("first player: %w", err)
	}
	if err := c.Second.validate(); err != nil {
		return fmt.Errorf("second player: %w", err)
	}
	if c.Bench.Games < 1 {
		return fmt.Errorf("bench games must be positive, got %d", c.Bench.Games)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// NewState returns the empty board described by the config.
func (c *Config) NewState() *game.State {
	starting, _ := parsePlayer(c.Board.Starting)
	return game.NewStateWithSize(c.Board.Rows, c.Board.Columns, starting)
}

// LogLevel returns the configured level, defaulting to info.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (p Player) Spec() player.Spec {
	return player.Spec{
		Kind:       player.Kind(p.Kind),
		Depth:      p.Depth,
		Iterations: p.Iterations,
		Goroutines: p.Goroutines,
		Seed:       p.Seed,
		Evaluator:  p.Evaluator,
	}
}

func (p Player) validate() error {
	if !player.Kind(p.Kind).Valid() {
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Depth < 1 {
		return fmt.Errorf("depth must be positive, got %d", p.Depth)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", p.Iterations)
	}
	if _, err := player.LookupEvaluator(p.Evaluator); err != nil {
		return err
	}
	return nil
}

func parsePlayer(name string) (game.Player, error) {
	switch name {
	case "first", "":
		return game.First, nil
	case "second":
		return game.Second, nil
	default:
		return game.None, fmt.Errorf("unknown starting player %q", name)
	}
}
