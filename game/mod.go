package game

// State is the contract a game must satisfy to be searched. S is the concrete
// state type itself, so Clone can return it without a type assertion.
//
// DoAction must be deterministic for a given state and action, and repeated
// calls to ValidActions on an unmodified state must return the same actions in
// the same order: expansion order is taken from it.
type State[A comparable, S any] interface {
	// Clone returns a copy sharing no mutable memory with the receiver
	Clone() S
	// NextPlayer is the player to move
	NextPlayer() Player
	// DoAction applies a legal action in place and reports the resulting outcome
	DoAction(action A) Outcome[A]
	// ValidActions enumerates the legal actions for player
	ValidActions(player Player) []A
	// HasWon reports whether player has already won
	HasWon(player Player) bool
}

// CurrentOutcome evaluates a position without playing a move: a win for either
// player, a draw when the side to move has no actions, otherwise the actions.
func CurrentOutcome[A comparable, S State[A, S]](state S) Outcome[A] {
	switch {
	case state.HasWon(P1):
		return WinFor[A](P1)
	case state.HasWon(P2):
		return WinFor[A](P2)
	}
	actions := state.ValidActions(state.NextPlayer())
	if len(actions) == 0 {
		return DrawOutcome[A]()
	}
	return ContinueWith(actions)
}
