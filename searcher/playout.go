package searcher

import "mcts/game"

// Rand is the random source used by rollouts. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Playout scores the position reached with outcome for perspective. A decisive
// outcome is scored directly, without drawing from rng. Otherwise uniformly
// random actions are applied to state until the game ends; state is consumed.
func Playout[A comparable, S game.State[A, S]](state S, outcome game.Outcome[A], perspective game.Player, rng Rand) float64 {
	value, _ := playout(state, outcome, perspective, rng)
	return value
}

func playout[A comparable, S game.State[A, S]](state S, outcome game.Outcome[A], perspective game.Player, rng Rand) (float64, int) {
	plies := 0
	for !outcome.Decisive() {
		actions := outcome.Actions()
		outcome = state.DoAction(actions[rng.Intn(len(actions))])
		plies++
	}
	return outcome.Value(perspective), plies
}
