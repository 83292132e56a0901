package experiments

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"
)

// Arena plays a number of games between two search agents. The agents swap
// sides every game so each starts half of them.
type Arena[A comparable, S game.State[A, S]] struct {
	Game   engine.Game[A, S]
	Agents [2]metrics.AgentConfig
	Games  int
	// Parallel limits the games played at once, 0 or less runs them one by one
	Parallel int
}

type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays all games. Game IDs start at 1 and follow the order games were
// scheduled in, regardless of when they finished.
func (a *Arena[A, S]) Run(ctx context.Context) (Results, error) {
	games := make([]metrics.GameRecord, a.Games)
	moves := make([][]metrics.MoveRecord, a.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Parallel, 1))
	log.Info().Msgf("starting %d %s games between agent %d and agent %d...", a.Games, a.Game.Name, a.Agents[0].ID, a.Agents[1].ID)

	for i := 0; i < a.Games; i++ {
		i := i
		g.Go(func() error {
			first, second := a.Agents[0], a.Agents[1]
			if i%2 == 1 {
				first, second = second, first
			}
			id := i + 1
			log.Info().Msgf("starting game %d of %d...", id, a.Games)

			gameMetric, moveMetrics, err := a.runGame(ctx, first, second, uint64(i))
			if err != nil {
				return errors.Wrapf(err, "game %d", id)
			}
			games[i] = metrics.GameRecord{
				ID:         id,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moves[i] = append(moves[i], metrics.MoveRecord{Game: id, MoveMetric: mm})
			}
			log.Info().Msgf("completed game %d with winner: %s", id, gameMetric.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	results := Results{Games: games}
	for _, m := range moves {
		results.Moves = append(results.Moves, m...)
	}
	return results, nil
}

func (a *Arena[A, S]) runGame(ctx context.Context, first, second metrics.AgentConfig, offset uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	p1 := a.newAgent(first, game.P1, offset)
	p2 := a.newAgent(second, game.P2, offset)
	e := engine.LocalEngine[A](a.Game, p1, p2)
	return e.Run(ctx)
}

func (a *Arena[A, S]) newAgent(config metrics.AgentConfig, player game.Player, offset uint64) engine.Agent[A] {
	budget := engine.Budget{
		Duration:   config.Duration,
		Iterations: config.Iterations,
	}
	var opts []searcher.Option
	if config.Seed != 0 {
		opts = append(opts, searcher.WithSeed(config.Seed+offset))
	}
	return engine.NewMCTSAgent[A](a.Game.New(), player, game.P1, budget, opts...)
}

// Save stores the agent configs and the records of the games as CSV files.
func (a *Arena[A, S]) Save(w *metrics.Writer, results Results) error {
	if err := w.WriteAgentConfigs(a.Agents[:]); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")
	if err := w.WriteGameRecords(results.Games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := w.WriteMoveRecords(results.Moves); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}

type Stat struct {
	Mean   float64
	StdDev float64 // NaN with fewer than two samples
}

func newStat(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{Mean: math.NaN(), StdDev: math.NaN()}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Stat{Mean: mean, StdDev: std}
}

// Summary aggregates the results per agent, in the order of Arena.Agents.
type Summary struct {
	Games      int
	Wins       [2]int
	Draws      int
	GameLength Stat
	Episodes   [2]Stat // search episodes per move
}

func Summarize(agents [2]metrics.AgentConfig, results Results) Summary {
	summary := Summary{Games: len(results.Games)}
	index := func(id int) int {
		if id == agents[0].ID {
			return 0
		}
		return 1
	}

	byGame := make(map[int]metrics.GameRecord, len(results.Games))
	lengths := make([]float64, 0, len(results.Games))
	for _, r := range results.Games {
		byGame[r.ID] = r
		lengths = append(lengths, float64(r.TotalMoves))
		switch r.Winner {
		case game.P1:
			summary.Wins[index(r.Agent1)]++
		case game.P2:
			summary.Wins[index(r.Agent2)]++
		default:
			summary.Draws++
		}
	}
	summary.GameLength = newStat(lengths)

	var episodes [2][]float64
	for _, m := range results.Moves {
		r := byGame[m.Game]
		id := r.Agent1
		if m.Player == game.P2 {
			id = r.Agent2
		}
		i := index(id)
		episodes[i] = append(episodes[i], float64(m.Episodes))
	}
	for i := range episodes {
		summary.Episodes[i] = newStat(episodes[i])
	}
	return summary
}
