package searcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot renders the top depth layers of the tree in Graphviz format.
func (t *Tree[A, S]) ToDot(depth int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.Wrap(err, "naming graph")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "directing graph")
	}

	id := 0
	var walk func(n *Node[A], level int) (string, error)
	walk = func(n *Node[A], level int) (string, error) {
		name := fmt.Sprintf("n%d", id)
		id++
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(nodeLabel(n)),
		}
		if err := g.AddNode("G", name, attrs); err != nil {
			return "", errors.Wrapf(err, "adding node %s", name)
		}
		if level >= depth {
			return name, nil
		}
		for _, c := range n.children {
			kid, err := walk(c, level+1)
			if err != nil {
				return "", err
			}
			if err := g.AddEdge(name, kid, true, nil); err != nil {
				return "", errors.Wrapf(err, "adding edge %s -> %s", name, kid)
			}
		}
		return name, nil
	}

	if _, err := walk(t.root, 0); err != nil {
		return "", err
	}
	return g.String(), nil
}

func nodeLabel[A comparable](n *Node[A]) string {
	action := "root"
	if n.hasAction {
		action = fmt.Sprintf("%v by %v", n.action, n.justActed)
	}
	return fmt.Sprintf("%s\nvisits %d\nvalue %.3f", action, n.visits, n.value)
}

// Layer describes the root and its children, one node per line.
func (t *Tree[A, S]) Layer() string {
	var sb strings.Builder
	sb.WriteString(t.root.String())
	for _, c := range t.root.children {
		sb.WriteString("\n  ")
		sb.WriteString(c.String())
	}
	return sb.String()
}
