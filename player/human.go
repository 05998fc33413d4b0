package player

import (
	"bufio"
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Prompter asks a person for a column. The answer is not trusted; Human
// re-validates it.
type Prompter interface {
	Prompt(state *game.State) (int, error)
}

// Human asks its prompter until a valid column comes back.
type Human struct {
	prompter Prompter
	metrics  metrics.Collector
}

func NewHuman(prompter Prompter, collector metrics.Collector) *Human {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Human{prompter: prompter, metrics: collector}
}

// ChooseMove falls back to the lowest valid column once the prompter fails,
// so a closed input never stalls the game.
func (h *Human) ChooseMove(state *game.State) int {
	h.metrics.Start("human", 1, 0, 0)
	for {
		column, err := h.prompter.Prompt(state)
		if err != nil {
			fallback := state.ValidMoves()[0]
			log.Warn().Err(err).Msgf("no input from %s player, playing column %d", state.CurrentPlayer, fallback)
			return fallback
		}
		if state.IsValidMove(column) {
			return column
		}
		log.Debug().Msgf("rejected column %d from %s player", column, state.CurrentPlayer)
	}
}

type readerPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReaderPrompter prompts on out and reads one column per line from in.
// Lines that are not integers yield -1 so the caller asks again.
func NewReaderPrompter(in io.Reader, out io.Writer) Prompter {
	return &readerPrompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *readerPrompter) Prompt(state *game.State) (int, error) {
	fmt.Fprintf(p.out, "Enter a number between 0 and %d: ", state.Columns()-1)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read column: %w", err)
		}
		return 0, fmt.Errorf("read column: %w", io.EOF)
	}
	column, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
	if err != nil {
		return -1, nil
	}
	return column, nil
}
