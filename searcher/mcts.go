package searcher

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"mcts/game"
	"mcts/utils"
)

type options struct {
	rng     Rand
	metrics MetricsCollector
}

type Option func(o *options)

// WithRand injects the random source used by rollouts.
func WithRand(rng Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed makes the search reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

// Stats is a snapshot of the root.
type Stats struct {
	Visits   int
	Value    float64
	MinDepth int
	MaxDepth int
}

// Tree searches a game for a fixed perspective player. It owns the root node
// and the reference state, the real position the root stands for. A Tree is
// not safe for concurrent use.
type Tree[A comparable, S game.State[A, S]] struct {
	root        *Node[A]
	state       S
	rng         Rand
	perspective game.Player
	metrics     MetricsCollector
}

// New builds a tree for state, seeded with one simulation at the root.
// firstMover is the player to move in state.
func New[A comparable, S game.State[A, S]](state S, perspective, firstMover game.Player, opts ...Option) *Tree[A, S] {
	o := options{
		metrics: NewNoMetricsCollector(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	t := &Tree[A, S]{
		state:       state.Clone(),
		rng:         o.rng,
		perspective: perspective,
		metrics:     o.metrics,
	}
	var none A
	t.root = t.newNode(none, false, firstMover.Other(), state.Clone(), game.CurrentOutcome[A](state))
	return t
}

// newNode creates a node for the position reached in state and seeds its value
// with one rollout. state is consumed.
func (t *Tree[A, S]) newNode(action A, hasAction bool, justActed game.Player, state S, outcome game.Outcome[A]) *Node[A] {
	outcome = outcome.Normalize()
	value, plies := playout(state, outcome, t.perspective, t.rng)
	t.metrics.AddRollout(plies)
	return &Node[A]{
		action:    action,
		hasAction: hasAction,
		justActed: justActed,
		visits:    1,
		value:     value,
		actions:   outcome.Actions(),
	}
}

func (t *Tree[A, S]) Root() *Node[A] {
	return t.root
}

// State returns a copy of the reference state.
func (t *Tree[A, S]) State() S {
	return t.state.Clone()
}

func (t *Tree[A, S]) Perspective() game.Player {
	return t.perspective
}

func (t *Tree[A, S]) RootStatistics() Stats {
	return Stats{
		Visits:   t.root.visits,
		Value:    t.root.value,
		MinDepth: t.root.MinDepth(),
		MaxDepth: t.root.MaxDepth(),
	}
}

// Iterate runs one select, expand, simulate and backpropagate cycle.
func (t *Tree[A, S]) Iterate() {
	t.descend(t.root, t.state.Clone())
	t.metrics.AddEpisode()
}

// descend walks down from node, whose action has already been applied to
// state, and returns the result to backpropagate.
func (t *Tree[A, S]) descend(node *Node[A], state S) float64 {
	var result float64
	switch {
	case node.expanded < len(node.actions): // Expansion
		action := node.actions[node.expanded]
		node.expanded++
		outcome := state.DoAction(action)
		child := t.newNode(action, true, node.justActed.Other(), state, outcome)
		node.children = append(node.children, child)
		result = child.value
	case len(node.children) > 0: // Selection
		child := selectChild(node, t.perspective)
		state.DoAction(child.action)
		result = t.descend(child, state)
	default: // Terminal
		node.visits++
		return node.value
	}
	node.update(result)
	return result
}

// RunFor iterates until d has elapsed. The deadline is checked between
// iterations only.
func (t *Tree[A, S]) RunFor(d time.Duration) {
	t.metrics.Start()
	start := time.Now()
	searches := 0
	for time.Since(start) < d {
		t.Iterate()
		searches++
	}
	elapsed := time.Since(start)
	log.Debug().Dur("elapsed", elapsed).Msgf("did %d searches in %s", searches, elapsed)
}

// RunIterations runs exactly n iterations.
func (t *Tree[A, S]) RunIterations(n int) {
	t.metrics.Start()
	for i := 0; i < n; i++ {
		t.Iterate()
	}
}

// RunContext iterates until ctx is done, checked between iterations.
func (t *Tree[A, S]) RunContext(ctx context.Context) {
	t.metrics.Start()
	searches := 0
	for ctx.Err() == nil {
		t.Iterate()
		searches++
	}
	log.Debug().Msgf("did %d searches before %v", searches, ctx.Err())
}

// BestAction recommends the root child with the highest value.
func (t *Tree[A, S]) BestAction() (A, error) {
	best := bestChild(t.root)
	if best == nil {
		var none A
		return none, ErrNoLegalMoves
	}
	return best.action, nil
}

// RecommendAndCommit plays the best action and re-roots the tree on it.
func (t *Tree[A, S]) RecommendAndCommit() (A, error) {
	action, err := t.BestAction()
	if err != nil {
		return action, err
	}
	return action, t.Advance(action)
}

// Advance commits a real move: the child for action becomes the root with its
// statistics intact and every other subtree is dropped. If the action was
// never expanded, ErrActionNotFound is returned and nothing changes.
func (t *Tree[A, S]) Advance(action A) error {
	i := utils.FindIndexFunc(t.root.children, func(c *Node[A]) bool {
		return c.action == action
	})
	if i < 0 {
		return errors.Wrapf(ErrActionNotFound, "action %v", action)
	}
	child := t.root.children[i]
	t.root.children = nil
	t.root = child
	t.state.DoAction(action)
	t.metrics.SetTreeReused(true)
	log.Debug().Msgf("advanced to %v, keeping %d visits", action, child.visits)
	return nil
}

// AdvanceOrSeed commits a real move like Advance. When the move is legal but
// was never expanded, a fresh root is built for it with one simulation.
func (t *Tree[A, S]) AdvanceOrSeed(action A) error {
	err := t.Advance(action)
	if !errors.Is(err, ErrActionNotFound) {
		return err
	}
	if !slices.Contains(t.root.actions, action) {
		return errors.Wrapf(err, "not a legal action")
	}

	log.Warn().Msgf("action %v was never expanded, seeding a fresh subtree", action)
	state := t.state.Clone()
	outcome := state.DoAction(action)
	root := t.newNode(action, true, t.root.justActed.Other(), state, outcome)
	t.root = root
	t.state.DoAction(action)
	t.metrics.SetTreeReused(false)
	return nil
}
