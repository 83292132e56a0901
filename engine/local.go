package engine

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mcts/experiments/metrics"
	"mcts/game"
)

// Local runs a game between two agents in process. The agent for P1 is at
// index 0.
type Local[A comparable, S game.State[A, S]] struct {
	Game    Game[A, S]
	Agents  [2]Agent[A]
	Console *Console[A, S]
	// Moves lists the actions of the last game
	Moves []A
}

func LocalEngine[A comparable, S game.State[A, S]](g Game[A, S], p1, p2 Agent[A]) *Local[A, S] {
	return &Local[A, S]{
		Game:   g,
		Agents: [2]Agent[A]{p1, p2},
	}
}

func (e *Local[A, S]) agent(p game.Player) Agent[A] {
	return e.Agents[p-game.P1]
}

// Run plays from the game's starting position until the game is decided.
func (e *Local[A, S]) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state := e.Game.New()
	outcome := game.CurrentOutcome[A](state)
	gameMetric := metrics.GameMetric{
		StartingPlayer: state.NextPlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	e.Moves = nil

	log.Info().Msgf("player %s is starting %s", gameMetric.StartingPlayer, e.Game.Name)
	if e.Console != nil {
		e.Console.Board(state)
	}

	step := 1
	for !outcome.Decisive() && step <= MaxMoves {
		player := state.NextPlayer()
		action, searchMetrics, err := e.agent(player).Choose(ctx)
		if err != nil {
			return gameMetric, moveMetrics, errors.Wrapf(err, "%s failed to move", player)
		}
		if !slices.Contains(outcome.Actions(), action) {
			return gameMetric, moveMetrics, errors.Errorf("%s chose illegal move %s", player, e.Game.Format(action))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        player,
			SearchMetrics: searchMetrics,
		})

		outcome = state.DoAction(action)
		e.Moves = append(e.Moves, action)
		if err := e.agent(player.Other()).Observe(action); err != nil {
			return gameMetric, moveMetrics, errors.Wrapf(err, "%s failed to observe %s", player.Other(), e.Game.Format(action))
		}

		if e.Console != nil {
			e.Console.Move(player, action)
			if b, ok := e.agent(player).(Believer); ok {
				e.Console.Beliefs(b.Beliefs())
			}
			e.Console.Board(state)
		}
		log.Debug().Msgf("step %d: %s played %s", step, player, e.Game.Format(action))
		step++
	}
	if !outcome.Decisive() {
		log.Warn().Msgf("stopped after %d moves without a result", MaxMoves)
	}

	winner, _ := outcome.Normalize().Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.Moves)
	if e.Console != nil {
		e.Console.Result(winner)
	}
	log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	return gameMetric, moveMetrics, nil
}
