package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mcts/game"
	"mcts/searcher"
)

var ErrGameOver = errors.New("game is over")

// Budget limits the search behind a single move. A positive Iterations takes
// precedence over Duration.
type Budget struct {
	Duration   time.Duration
	Iterations int
}

// MCTSAgent plays with a search tree that is kept across moves.
type MCTSAgent[A comparable, S game.State[A, S]] struct {
	tree    *searcher.Tree[A, S]
	budget  Budget
	metrics searcher.MetricsCollector
	beliefs searcher.Stats
}

// NewMCTSAgent creates an agent playing player from state, where firstMover is
// to move.
func NewMCTSAgent[A comparable, S game.State[A, S]](state S, player, firstMover game.Player, budget Budget, opts ...searcher.Option) *MCTSAgent[A, S] {
	metrics := searcher.NewMetricsCollector()
	opts = append(opts, searcher.WithMetrics(metrics))
	return &MCTSAgent[A, S]{
		tree:    searcher.New[A](state, player, firstMover, opts...),
		budget:  budget,
		metrics: metrics,
	}
}

func (a *MCTSAgent[A, S]) Tree() *searcher.Tree[A, S] {
	return a.tree
}

func (a *MCTSAgent[A, S]) Choose(ctx context.Context) (A, searcher.SearchMetrics, error) {
	if a.tree.Root().Terminal() {
		var none A
		return none, searcher.SearchMetrics{}, ErrGameOver
	}

	if a.budget.Iterations > 0 {
		a.tree.RunIterations(a.budget.Iterations)
	} else {
		ctx, cancel := context.WithTimeout(ctx, a.budget.Duration)
		defer cancel()
		a.tree.RunContext(ctx)
	}
	if len(a.tree.Root().Children()) == 0 {
		// the budget ran out before the first expansion
		a.tree.Iterate()
	}
	metrics := a.metrics.Complete()
	a.beliefs = a.tree.RootStatistics()

	action, err := a.tree.RecommendAndCommit()
	if err != nil {
		return action, metrics, errors.Wrap(err, "committing move")
	}
	log.Debug().Msgf("chose %v after %d episodes", action, metrics.Episodes)
	return action, metrics, nil
}

func (a *MCTSAgent[A, S]) Observe(action A) error {
	return a.tree.AdvanceOrSeed(action)
}

// Beliefs reports the root statistics of the last search, taken before the
// chosen move was committed.
func (a *MCTSAgent[A, S]) Beliefs() searcher.Stats {
	return a.beliefs
}

// HumanAgent reads moves from a text stream, asking again until it gets a
// legal one.
type HumanAgent[A comparable, S game.State[A, S]] struct {
	game   Game[A, S]
	state  S
	player game.Player
	in     *bufio.Reader
	out    io.Writer
}

func NewHumanAgent[A comparable, S game.State[A, S]](g Game[A, S], state S, player game.Player, in io.Reader, out io.Writer) *HumanAgent[A, S] {
	return &HumanAgent[A, S]{
		game:   g,
		state:  state.Clone(),
		player: player,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

func (h *HumanAgent[A, S]) Choose(ctx context.Context) (A, searcher.SearchMetrics, error) {
	var none A
	legal := h.state.ValidActions(h.player)
	if len(legal) == 0 {
		return none, searcher.SearchMetrics{}, ErrGameOver
	}
	for {
		if err := ctx.Err(); err != nil {
			return none, searcher.SearchMetrics{}, err
		}
		fmt.Fprintf(h.out, "Enter a move for %s: ", h.game.Mark(h.player))
		line, err := h.in.ReadString('\n')
		if err != nil && line == "" {
			return none, searcher.SearchMetrics{}, errors.Wrap(err, "reading move")
		}
		action, err := h.game.Parse(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(h.out, "Invalid move: %v\n", err)
			continue
		}
		if !slices.Contains(legal, action) {
			fmt.Fprintf(h.out, "Illegal move %s\n", h.game.Format(action))
			continue
		}
		h.state.DoAction(action)
		return action, searcher.SearchMetrics{}, nil
	}
}

func (h *HumanAgent[A, S]) Observe(action A) error {
	if !slices.Contains(h.state.ValidActions(h.state.NextPlayer()), action) {
		return errors.Errorf("illegal move %s", h.game.Format(action))
	}
	h.state.DoAction(action)
	return nil
}
