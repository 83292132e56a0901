package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/config"
	"mcts/engine"
	"mcts/game"
	"mcts/game/connect4"
	"mcts/searcher"
)

func TestRunArena(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "arena"
	cfg.Iterations = 10
	cfg.Games = 2
	cfg.Seed = 9
	cfg.Out = t.TempDir()

	require.NoError(t, run(context.Background(), cfg, engine.UltimateTicTacToe()))

	matches, err := filepath.Glob(filepath.Join(cfg.Out, "uttt", "*", "game_records.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestWriteDot(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		tree := searcher.New[connect4.Column](connect4.New(), game.P1, game.P1, searcher.WithSeed(1))
		require.NoError(t, writeDot("", tree))
	})

	t.Run("writes the top layers", func(t *testing.T) {
		tree := searcher.New[connect4.Column](connect4.New(), game.P1, game.P1, searcher.WithSeed(1))
		tree.RunIterations(20)
		path := filepath.Join(t.TempDir(), "tree.dot")

		require.NoError(t, writeDot(path, tree))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, strings.Contains(string(data), "digraph G"))
	})
}
