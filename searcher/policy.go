package searcher

import (
	"math"

	"mcts/game"
	"mcts/utils"
)

type uct struct {
	numerator float64
}

func newUCT(parentVisits int) *uct {
	if parentVisits == 0 {
		panic("parent visits cannot be 0")
	}
	return &uct{numerator: math.Log(ParentVisitsScale * float64(parentVisits))}
}

// evaluate scores a child. maximize is true when the perspective player picks
// the move, otherwise the child's value is inverted.
func (u uct) evaluate(value float64, visits int, maximize bool) float64 {
	if visits == 0 {
		panic("visits cannot be 0")
	}
	if !maximize {
		value = 1 - value
	}
	// UCB1 = v + sqrt(ln(2N)/n)
	return value + math.Sqrt(u.numerator/float64(visits))
}

// selectChild picks the child with the highest UCB1 score, first one on ties.
func selectChild[A comparable](node *Node[A], perspective game.Player) *Node[A] {
	policy := newUCT(node.visits)
	maximize := perspective != node.justActed
	i := utils.Argmax(node.children, func(c *Node[A]) float64 {
		return policy.evaluate(c.value, c.visits, maximize)
	})
	if i < 0 {
		return nil
	}
	return node.children[i]
}

// bestChild picks the child with the highest raw value, first one on ties.
func bestChild[A comparable](node *Node[A]) *Node[A] {
	i := utils.Argmax(node.children, func(c *Node[A]) float64 {
		return c.value
	})
	if i < 0 {
		return nil
	}
	return node.children[i]
}
