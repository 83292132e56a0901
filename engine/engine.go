package engine

import (
	"context"

	"mcts/game"
	"mcts/searcher"
)

// MaxMoves bounds a game in case a State never reaches a decisive outcome.
const MaxMoves = 1000

// Game bundles a game implementation with what the engine needs to talk about
// it: a starting position and text conversion of actions and boards.
type Game[A comparable, S game.State[A, S]] struct {
	Name   string
	New    func() S
	Parse  func(string) (A, error)
	Format func(A) string
	Render func(state S, mark func(game.Player) string) string
	Mark   func(game.Player) string
}

// Agent plays one side of a game. Choose is only called on the agent's turn
// and the agent is responsible for tracking its own move. Observe tells it
// about the opponent's moves.
type Agent[A comparable] interface {
	Choose(ctx context.Context) (A, searcher.SearchMetrics, error)
	Observe(action A) error
}

// Believer is implemented by agents that can report what their last search
// found.
type Believer interface {
	Beliefs() searcher.Stats
}
