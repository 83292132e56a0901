package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/game"
)

func TestPlayout(t *testing.T) {
	t.Run("decisive win for the perspective player", func(t *testing.T) {
		rng := newCountingRand(1)
		got := Playout(newMockState(0), game.WinFor[int](game.P1), game.P1, rng)

		require.Equal(t, 1.0, got)
		require.Zero(t, rng.draws, "Decisive outcome should not draw random numbers")
	})

	t.Run("decisive win for the opponent", func(t *testing.T) {
		rng := newCountingRand(1)
		got := Playout(newMockState(0), game.WinFor[int](game.P1), game.P2, rng)

		require.Equal(t, 0.0, got)
		require.Zero(t, rng.draws)
	})

	t.Run("draw", func(t *testing.T) {
		rng := newCountingRand(1)
		got := Playout(newMockState(0), game.DrawOutcome[int](), game.P2, rng)

		require.Equal(t, 0.5, got)
		require.Zero(t, rng.draws)
	})

	t.Run("empty continuing outcome is a draw", func(t *testing.T) {
		rng := newCountingRand(1)
		got := Playout(newMockState(3), game.ContinueWith([]int{}), game.P1, rng)

		require.Equal(t, 0.5, got)
		require.Zero(t, rng.draws)
	})

	t.Run("forced line plays to the end", func(t *testing.T) {
		rng := newCountingRand(1)
		state := newMockState(1)

		got := Playout(state, game.CurrentOutcome[int](state), game.P1, rng)

		require.Equal(t, 1.0, got, "P1 must take the last stone")
		require.Equal(t, 1, rng.draws, "One random action should be drawn")
		require.True(t, state.HasWon(game.P1), "Rollout should play on the given state")
	})

	t.Run("random rollout reaches a decisive outcome", func(t *testing.T) {
		rng := newCountingRand(3)
		state := newMockState(9)

		got, plies := playout(state, game.CurrentOutcome[int](state), game.P2, rng)

		require.Contains(t, []float64{0, 1}, got)
		require.Equal(t, rng.draws, plies)
		require.GreaterOrEqual(t, plies, 5)
		require.LessOrEqual(t, plies, 9)
	})
}
