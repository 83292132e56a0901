package metrics

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mcts/game"
)

type failingClose struct {
	bytes.Buffer
}

func (f *failingClose) Close() error {
	return errors.New("disk full")
}

func TestWriter(t *testing.T) {
	t.Run("writes one file per record type", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "arena")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Duration: time.Second, Iterations: 0, Seed: 3}}))
		require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: game.P1, Winner: game.P2}}}))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "agent_configs.csv"))
		require.NoError(t, err)
		require.Equal(t, "id,duration,iterations,seed\n1,1s,0,3\n", string(data))
		_, err = os.Stat(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
	})

	t.Run("close errors are reported", func(t *testing.T) {
		out := &failingClose{}
		w := &Writer{
			baseDir: t.TempDir(),
			create: func(string) (io.WriteCloser, error) {
				return out, nil
			},
		}

		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1}})

		require.ErrorContains(t, err, "disk full")
		require.Contains(t, out.String(), "id,duration,iterations,seed", "Rows should be flushed before closing")
	})
}
