package searcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDot(t *testing.T) {
	t.Run("root only", func(t *testing.T) {
		tree := newConnect4Tree(20)

		dot, err := tree.ToDot(3)

		require.NoError(t, err)
		require.Contains(t, dot, "digraph G")
		require.Equal(t, 1, strings.Count(dot, "shape=box"))
	})

	t.Run("depth limits the layers", func(t *testing.T) {
		tree := newConnect4Tree(21)
		tree.RunIterations(100)

		dot, err := tree.ToDot(1)

		require.NoError(t, err)
		require.Equal(t, 1+len(tree.Root().Children()), strings.Count(dot, "shape=box"))
		require.Contains(t, dot, "visits")
	})
}

func TestLayer(t *testing.T) {
	tree := newConnect4Tree(22)
	tree.RunIterations(2)

	lines := strings.Split(tree.Layer(), "\n")

	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Node(just=P2 action=- "))
	require.True(t, strings.HasPrefix(lines[1], "  Node(just=P1 action=0 "))
}
