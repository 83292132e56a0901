package searcher

import (
	"fmt"

	"mcts/game"
)

// Node is one position of the search tree. It exclusively owns its children.
//
// The legal actions of the position are captured when the node is created.
// actions[:expanded] have a child each, in the same order; actions[expanded:]
// are still untried.
type Node[A comparable] struct {
	action    A
	hasAction bool
	justActed game.Player
	visits    int
	value     float64 // running mean of results for the perspective player
	actions   []A
	expanded  int
	children  []*Node[A]
}

// update folds one more result into the running mean.
func (n *Node[A]) update(result float64) {
	n.value = (n.value*float64(n.visits) + result) / float64(n.visits+1)
	n.visits++
}

// Action is the move that led to this node, absent for the initial root.
func (n *Node[A]) Action() (A, bool) {
	return n.action, n.hasAction
}

func (n *Node[A]) JustActed() game.Player {
	return n.justActed
}

func (n *Node[A]) Visits() int {
	return n.visits
}

// Value estimates the win probability of the perspective player.
func (n *Node[A]) Value() float64 {
	return n.value
}

func (n *Node[A]) Children() []*Node[A] {
	return n.children
}

// Untried returns the legal actions not expanded yet, in expansion order.
func (n *Node[A]) Untried() []A {
	return n.actions[n.expanded:]
}

// Terminal reports whether the node is a finished game.
func (n *Node[A]) Terminal() bool {
	return len(n.actions) == 0
}

// MinDepth is the length of the shortest line below the node that ends in a
// leaf of the tree.
func (n *Node[A]) MinDepth() int {
	if len(n.children) == 0 {
		return 0
	}
	depth := n.children[0].MinDepth()
	for _, c := range n.children[1:] {
		depth = min(depth, c.MinDepth())
	}
	return depth + 1
}

func (n *Node[A]) MaxDepth() int {
	depth := -1
	for _, c := range n.children {
		depth = max(depth, c.MaxDepth())
	}
	return depth + 1
}

// Size counts the nodes of the subtree.
func (n *Node[A]) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

func (n *Node[A]) String() string {
	action := "-"
	if n.hasAction {
		action = fmt.Sprintf("%v", n.action)
	}
	return fmt.Sprintf("Node(just=%v action=%s value=%.4f visits=%d untried=%v children=%d)",
		n.justActed, action, n.value, n.visits, n.Untried(), len(n.children))
}
