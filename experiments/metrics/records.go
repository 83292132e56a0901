package metrics

import (
	"time"

	"mcts/game"
	"mcts/searcher"
)

// AgentConfig describes one search agent taking part in an experiment. A
// positive Iterations takes precedence over Duration.
type AgentConfig struct {
	ID         int
	Duration   time.Duration
	Iterations int
	Seed       uint64
}

type MoveMetric struct {
	Step   int
	Player game.Player
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing P1
	Agent2 int // AgentConfig.ID playing P2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
