package engine

import (
	"connect4/game"
)

// Engine drives one game from its current state to the end.
type Engine interface {
	// Run plays moves until the game is won or the board is full
	Run() (Result, error)
}

// Result summarizes a finished game. Winner is game.None for a tie.
type Result struct {
	StartingPlayer game.Player
	Winner         game.Player
	Moves          int
	Outcome        game.Outcome
	Line           game.Direction // direction of the winning segment, zero for a tie
}

// Update is reported to observers after every applied move.
type Update struct {
	Step    int // 1-based
	Player  game.Player
	Column  int
	State   *game.State // copy owned by the observer
	Outcome game.Outcome
}

// Observer receives updates synchronously from the engine loop.
type Observer func(update Update)
