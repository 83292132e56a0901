package game

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind uint8

const (
	Continuing OutcomeKind = iota
	Win
	Draw
)

func (k OutcomeKind) String() string {
	switch k {
	case Continuing:
		return "continuing"
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Rewards for a decisive outcome, seen from the perspective player
const (
	WinValue  = 1.0
	LossValue = 0.0
	DrawValue = 0.5
)

// Outcome summarizes the position reached after an action: a win for one
// player, a draw, or a game that continues with the given legal actions.
type Outcome[A comparable] struct {
	kind    OutcomeKind
	winner  Player
	actions []A
}

func WinFor[A comparable](player Player) Outcome[A] {
	return Outcome[A]{kind: Win, winner: player}
}

func DrawOutcome[A comparable]() Outcome[A] {
	return Outcome[A]{kind: Draw}
}

// ContinueWith builds a Continuing outcome. The slice is owned by the outcome
// from now on.
func ContinueWith[A comparable](actions []A) Outcome[A] {
	return Outcome[A]{kind: Continuing, actions: actions}
}

func (o Outcome[A]) Kind() OutcomeKind {
	return o.kind
}

// Winner returns the winning player, valid only for Win outcomes.
func (o Outcome[A]) Winner() (Player, bool) {
	return o.winner, o.kind == Win
}

// Actions returns the legal actions of a Continuing outcome, nil otherwise.
func (o Outcome[A]) Actions() []A {
	if o.kind != Continuing {
		return nil
	}
	return o.actions
}

// Decisive reports whether the game is over. An empty Continuing outcome
// counts as decisive: it is a draw.
func (o Outcome[A]) Decisive() bool {
	return o.kind != Continuing || len(o.actions) == 0
}

// Normalize rewrites a Continuing outcome without actions into a Draw. A game
// should never produce one, but the engine tolerates it.
func (o Outcome[A]) Normalize() Outcome[A] {
	if o.kind == Continuing && len(o.actions) == 0 {
		return DrawOutcome[A]()
	}
	return o
}

// Value scores a decisive outcome for perspective. Continuing outcomes have no
// value and panic.
func (o Outcome[A]) Value(perspective Player) float64 {
	o = o.Normalize()
	switch o.kind {
	case Win:
		if o.winner == perspective {
			return WinValue
		}
		return LossValue
	case Draw:
		return DrawValue
	case Continuing:
		panic("game: value of a continuing outcome")
	}
	panic("game: unknown outcome kind")
}
