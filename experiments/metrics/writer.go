package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig is the flat description of a benchmarked player.
type AgentConfig struct {
	ID         int
	Kind       string
	Depth      int
	Iterations int
	Goroutines int
	Seed       uint64
	Evaluator  string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game  int // GameRecord.ID
	Agent int // AgentConfig.ID of the mover
	MoveMetric
}

type Tally struct {
	Agent1     int
	Agent2     int
	Agent1Wins int
	Agent2Wins int
	Ties       int
	Moves      int
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<UTC timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "iterations", "goroutines", "seed", "evaluator"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Iterations),
			strconv.Itoa(config.Goroutines),
			strconv.FormatUint(config.Seed, 10),
			config.Evaluator,
		}
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "agent", "step", "player", "column", "strategy", "goroutines", "depth", "iterations", "duration", "nodes", "episodes", "full_playouts"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Column),
			record.Strategy,
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Iterations),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
		}
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteTallies(tallies []Tally) error {
	header := []string{"agent1", "agent2", "agent1_wins", "agent2_wins", "ties", "moves"}
	rows := make([][]string, len(tallies))
	for i, tally := range tallies {
		rows[i] = []string{
			strconv.Itoa(tally.Agent1),
			strconv.Itoa(tally.Agent2),
			strconv.Itoa(tally.Agent1Wins),
			strconv.Itoa(tally.Agent2Wins),
			strconv.Itoa(tally.Ties),
			strconv.Itoa(tally.Moves),
		}
	}
	return w.write("tallies.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
