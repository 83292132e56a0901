package metrics

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type Writer struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewWriter creates a folder for the experiment under root, named by the
// current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
		create:  createFile,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Duration.String(),
			strconv.Itoa(config.Iterations),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	header := []string{"id", "duration", "iterations", "seed"}
	return errors.Wrap(w.write("agent_configs.csv", header, rows), "agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	return errors.Wrap(w.write("game_records.csv", header, rows), "game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Duration.String(),
			strconv.FormatInt(record.Episodes, 10),
			strconv.FormatInt(record.Rollouts, 10),
			strconv.FormatInt(record.RolloutPlies, 10),
			strconv.FormatBool(record.TreeReused),
		})
	}
	header := []string{"game", "step", "player", "duration", "episodes", "rollouts", "rollout_plies", "is_tree_reused"}
	return errors.Wrap(w.write("move_records.csv", header, rows), "move records")
}

func (w *Writer) write(file string, header []string, rows [][]string) (err error) {
	f, err := w.create(filepath.Join(w.baseDir, file))
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "failed to write rows")
	}
	return nil
}
