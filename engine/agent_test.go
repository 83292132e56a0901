package engine

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/game"
	"mcts/game/connect4"
	"mcts/searcher"
)

func TestMCTSAgent(t *testing.T) {
	t.Run("iteration budget", func(t *testing.T) {
		agent := NewMCTSAgent[connect4.Column](connect4.New(), game.P1, game.P1, Budget{Iterations: 1}, searcher.WithSeed(1))

		action, metrics, err := agent.Choose(context.Background())

		require.NoError(t, err)
		require.Equal(t, connect4.Column(0), action, "Only the first column is expanded after one iteration")
		require.Equal(t, int64(1), metrics.Episodes)
		require.False(t, metrics.TreeReused)
		require.Equal(t, 2, agent.Beliefs().Visits)
		require.Equal(t, game.P1, agent.Tree().State().Cell(connect4.Rows-1, 0))
	})

	t.Run("exhausted time budget still moves", func(t *testing.T) {
		agent := NewMCTSAgent[connect4.Column](connect4.New(), game.P1, game.P1, Budget{}, searcher.WithSeed(2))

		action, _, err := agent.Choose(context.Background())

		require.NoError(t, err)
		require.Equal(t, connect4.Column(0), action)
	})

	t.Run("opponent moves are followed", func(t *testing.T) {
		agent := NewMCTSAgent[connect4.Column](connect4.New(), game.P2, game.P1, Budget{Iterations: 100}, searcher.WithSeed(3))

		require.NoError(t, agent.Observe(4), "Unexpanded legal moves seed a new root")
		require.Equal(t, game.P1, agent.Tree().State().Cell(connect4.Rows-1, 4))

		action, metrics, err := agent.Choose(context.Background())
		require.NoError(t, err)
		require.Equal(t, int64(100), metrics.Episodes)
		require.Equal(t, game.P2, agent.Tree().State().Cell(connect4.Rows-1-boolToInt(action == 4), int(action)))
	})

	t.Run("illegal opponent move", func(t *testing.T) {
		board := connect4.New()
		for i := 0; i < connect4.Rows; i++ {
			board.DoAction(0)
		}
		agent := NewMCTSAgent[connect4.Column](board, game.P1, game.P1, Budget{Iterations: 10}, searcher.WithSeed(4))

		require.Error(t, agent.Observe(0))
	})

	t.Run("finished game", func(t *testing.T) {
		board := connect4.New()
		for _, col := range []connect4.Column{0, 1, 0, 1, 0, 1, 0} {
			board.DoAction(col)
		}
		agent := NewMCTSAgent[connect4.Column](board, game.P2, game.P2, Budget{Iterations: 10}, searcher.WithSeed(5))

		_, _, err := agent.Choose(context.Background())

		require.ErrorIs(t, err, ErrGameOver)
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestHumanAgent(t *testing.T) {
	t.Run("asks again until the move is valid", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("nine\n9\n3\n")
		human := NewHumanAgent(Connect4(), connect4.New(), game.P1, in, &out)

		action, _, err := human.Choose(context.Background())

		require.NoError(t, err)
		require.Equal(t, connect4.Column(3), action)
		require.Equal(t, 2, strings.Count(out.String(), "Invalid move"))
		require.Equal(t, 3, strings.Count(out.String(), "Enter a move for X"))
	})

	t.Run("full column is illegal", func(t *testing.T) {
		var out bytes.Buffer
		board := connect4.New()
		for i := 0; i < connect4.Rows; i++ {
			board.DoAction(0)
		}
		human := NewHumanAgent(Connect4(), board, game.P1, strings.NewReader("0\n1"), &out)

		action, _, err := human.Choose(context.Background())

		require.NoError(t, err)
		require.Equal(t, connect4.Column(1), action)
		require.Contains(t, out.String(), "Illegal move 0")
	})

	t.Run("end of input", func(t *testing.T) {
		human := NewHumanAgent(Connect4(), connect4.New(), game.P1, strings.NewReader(""), io.Discard)

		_, _, err := human.Choose(context.Background())

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("observing keeps the board in sync", func(t *testing.T) {
		var out bytes.Buffer
		human := NewHumanAgent(Connect4(), connect4.New(), game.P2, strings.NewReader("2\n"), &out)

		require.NoError(t, human.Observe(2))
		action, _, err := human.Choose(context.Background())

		require.NoError(t, err)
		require.Equal(t, connect4.Column(2), action)
		require.Equal(t, game.P2, human.state.Cell(connect4.Rows-2, 2))
	})
}
