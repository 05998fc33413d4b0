package engine

import (
	"connect4/game"
	"connect4/player"
	"fmt"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	state     *game.State
	players   map[game.Player]player.Player
	observers []Observer
}

type Option func(e *LocalEngine)

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// New returns an engine playing first and second from state. A nil state
// starts an empty default board with First to move.
func New(first, second player.Player, state *game.State, options ...Option) *LocalEngine {
	if first == nil || second == nil {
		panic("need two players")
	}
	if state == nil {
		state = game.NewState(game.First)
	}

	e := &LocalEngine{
		state: state.Copy(),
		players: map[game.Player]player.Player{
			game.First:  first,
			game.Second: second,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns a copy of the current position.
func (e *LocalEngine) State() *game.State {
	return e.state.Copy()
}

// Run executes the game loop until the game is over. A player returning an
// invalid column ends the run with an error wrapping game.ErrInvalidMove.
func (e *LocalEngine) Run() (Result, error) {
	result := Result{StartingPlayer: e.state.CurrentPlayer}
	log.Info().Msgf("%s player is starting", e.state.CurrentPlayer)

	outcome := e.state.CheckWin()
	for !outcome.Ended {
		mover := e.state.CurrentPlayer
		column := e.players[mover].ChooseMove(e.state.Copy())

		if err := e.state.Play(column); err != nil {
			return result, fmt.Errorf("move %d: %w", result.Moves+1, err)
		}
		result.Moves++
		outcome = e.state.CheckWin()
		log.Debug().Msgf("move %d: %s player dropped into column %d", result.Moves, mover, column)

		u := Update{
			Step:    result.Moves,
			Player:  mover,
			Column:  column,
			State:   e.state.Copy(),
			Outcome: outcome,
		}
		for _, observer := range e.observers {
			observer(u)
		}
	}

	result.Outcome = outcome
	result.Winner = outcome.Winner
	if segment, ok := e.state.WinningSegment(); ok {
		result.Line = segment.Direction
		log.Info().Msgf("%s player won with a %s line after %d moves", result.Winner, result.Line, result.Moves)
	} else {
		log.Info().Msgf("game tied after %d moves", result.Moves)
	}
	return result, nil
}
