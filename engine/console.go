package engine

import (
	"fmt"

	"github.com/muesli/termenv"

	"mcts/game"
	"mcts/searcher"
)

// Console prints a game as it is played.
type Console[A comparable, S game.State[A, S]] struct {
	out  *termenv.Output
	game Game[A, S]
}

func NewConsole[A comparable, S game.State[A, S]](out *termenv.Output, g Game[A, S]) *Console[A, S] {
	return &Console[A, S]{out: out, game: g}
}

func (c *Console[A, S]) mark(p game.Player) string {
	if c.out.Profile == termenv.Ascii {
		return c.game.Mark(p)
	}
	style := c.out.String(c.game.Mark(p))
	switch p {
	case game.P1:
		style = style.Foreground(c.out.Color("1")).Bold()
	case game.P2:
		style = style.Foreground(c.out.Color("3")).Bold()
	}
	return style.String()
}

func (c *Console[A, S]) Board(state S) {
	fmt.Fprintln(c.out, c.game.Render(state, c.mark))
}

func (c *Console[A, S]) Move(player game.Player, action A) {
	fmt.Fprintf(c.out, "%s played %s\n", c.mark(player), c.game.Format(action))
}

// Beliefs describes the search behind an engine move.
func (c *Console[A, S]) Beliefs(stats searcher.Stats) {
	fmt.Fprintf(c.out, " it has played %d games from this position\n", stats.Visits)
	fmt.Fprintf(c.out, " and it believes it will win with p = %.4f\n", stats.Value)
	fmt.Fprintf(c.out, " it has explored %d moves ahead fully, and has ventured as far as %d moves\n",
		stats.MinDepth, stats.MaxDepth)
}

func (c *Console[A, S]) Result(winner game.Player) {
	if winner == game.NoPlayer {
		fmt.Fprintln(c.out, "Draw")
		return
	}
	fmt.Fprintf(c.out, "%s Won!\n", c.mark(winner))
}
