package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcts/config"
	"mcts/engine"
	"mcts/experiments"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/meta"
	"mcts/searcher"
)

func main() {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Game {
	case "uttt":
		err = run(ctx, cfg, engine.UltimateTicTacToe())
	default:
		err = run(ctx, cfg, engine.Connect4())
	}
	if err != nil {
		log.Fatal().Err(err).Msg(cfg.Mode + " failed")
	}
}

func run[A comparable, S game.State[A, S]](ctx context.Context, cfg config.Config, g engine.Game[A, S]) error {
	seed := cfg.ResolveSeed()
	log.Info().Msgf("playing %s in %s mode with seed %d", g.Name, cfg.Mode, seed)
	budget := engine.Budget{Duration: cfg.Think, Iterations: cfg.Iterations}

	switch cfg.Mode {
	case "arena":
		return arena(ctx, cfg, g, seed)
	case "selfplay":
		p1 := engine.NewMCTSAgent[A](g.New(), game.P1, game.P1, budget, searcher.WithSeed(seed))
		p2 := engine.NewMCTSAgent[A](g.New(), game.P2, game.P1, budget, searcher.WithSeed(seed+1))
		e := engine.LocalEngine[A](g, p1, p2)
		e.Console = engine.NewConsole(termenv.NewOutput(os.Stdout), g)
		if _, _, err := e.Run(ctx); err != nil {
			return err
		}
		return writeDot(cfg.Dot, p1.Tree())
	default:
		human := game.P1
		if cfg.Human == "p2" {
			human = game.P2
		}
		agents := [2]engine.Agent[A]{}
		agents[human-game.P1] = engine.NewHumanAgent(g, g.New(), human, os.Stdin, os.Stdout)
		agents[human.Other()-game.P1] = engine.NewMCTSAgent[A](g.New(), human.Other(), game.P1, budget, searcher.WithSeed(seed))
		e := engine.LocalEngine(g, agents[0], agents[1])
		e.Console = engine.NewConsole(termenv.NewOutput(os.Stdout), g)
		_, _, err := e.Run(ctx)
		return err
	}
}

func arena[A comparable, S game.State[A, S]](ctx context.Context, cfg config.Config, g engine.Game[A, S], seed uint64) error {
	a := &experiments.Arena[A, S]{
		Game: g,
		Agents: [2]metrics.AgentConfig{
			{ID: 1, Duration: cfg.Think, Iterations: cfg.Iterations, Seed: seed},
			{ID: 2, Duration: cfg.Think, Iterations: cfg.Iterations, Seed: seed + uint64(cfg.Games)},
		},
		Games:    cfg.Games,
		Parallel: cfg.Parallel,
	}
	results, err := a.Run(ctx)
	if err != nil {
		return err
	}

	w, err := metrics.NewWriter(cfg.Out, g.Name)
	if err != nil {
		return err
	}
	if err := a.Save(w, results); err != nil {
		return err
	}

	s := experiments.Summarize(a.Agents, results)
	log.Info().Msgf("agent 1 won %d, agent 2 won %d, %d draws over %d games", s.Wins[0], s.Wins[1], s.Draws, s.Games)
	log.Info().Msgf("game length %.1f ± %.1f moves", s.GameLength.Mean, s.GameLength.StdDev)
	for i, e := range s.Episodes {
		log.Info().Msgf("agent %d searched %.0f ± %.0f episodes per move", a.Agents[i].ID, e.Mean, e.StdDev)
	}
	log.Info().Msgf("records written to %s", w.Dir())
	return nil
}

func writeDot[A comparable, S game.State[A, S]](path string, tree *searcher.Tree[A, S]) error {
	if path == "" {
		return nil
	}
	dot, err := tree.ToDot(meta.DOT_DEPTH)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, []byte(dot), 0644), "writing tree")
}
