package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader("game: uttt\nthink: 250ms\nlog_level: debug\n"))

		require.NoError(t, err)
		require.Equal(t, "uttt", cfg.Game)
		require.Equal(t, 250*time.Millisecond, cfg.Think)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "play", cfg.Mode, "Unset keys keep their default")
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(""))

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Decode(strings.NewReader("games: [1, 2"))
		require.Error(t, err)
	})
}

func TestFromArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromArgs("mcts", nil)

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, 3*time.Second, cfg.Think)
	})

	t.Run("flags override the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mode: arena\ngames: 6\niterations: 100\n"), 0644))

		cfg, err := FromArgs("mcts", []string{"-config", path, "-games", "2", "-seed", "7"})

		require.NoError(t, err)
		require.Equal(t, "arena", cfg.Mode)
		require.Equal(t, 2, cfg.Games)
		require.Equal(t, 100, cfg.Iterations)
		require.Equal(t, uint64(7), cfg.Seed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromArgs("mcts", []string{"-config", filepath.Join(t.TempDir(), "none.yaml")})
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := FromArgs("mcts", []string{"-game", "chess"})
		require.ErrorContains(t, err, "unknown game")

		_, err = FromArgs("mcts", []string{"-think", "0s"})
		require.Error(t, err)

		_, err = FromArgs("mcts", []string{"-human", "p3"})
		require.Error(t, err)
	})
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 42
	require.Equal(t, uint64(42), cfg.ResolveSeed())

	cfg.Seed = 0
	seed := cfg.ResolveSeed()
	require.NotZero(t, seed)
	require.Equal(t, seed, cfg.Seed, "The drawn seed is kept for reporting")
}
