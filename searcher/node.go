package searcher

import (
	"fmt"
	"math"

	"reversi/game"
)

type node struct {
	parent   *node // Traversal only, children are owned by their parent
	move     game.Square
	mover    game.Player // Player to move in state
	state    *game.GameState
	children []*node
	score    float64
}

func newNode(parent *node, move game.Square, state *game.GameState) *node {
	return &node{
		parent: parent,
		move:   move,
		mover:  state.Next(),
		state:  state,
	}
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// ply returns the distance to the root.
func (n *node) ply() int {
	ply := 0
	for p := n.parent; p != nil; p = p.parent {
		ply++
	}
	return ply
}

// expand attaches a child for every legal move of the player to move, in
// row-major order. It must be called once per node.
func (n *node) expand() {
	if n.children != nil {
		panic("node already expanded")
	}

	mover := n.mover
	moves := n.state.LegalMoves(mover)
	n.children = make([]*node, 0, len(moves))
	for _, move := range moves {
		n.children = append(n.children, newNode(n, move, n.state.Apply(mover, move)))
	}
}

// grow expands the subtree below n down to depth plies.
func grow(n *node, depth int, collector Collector) {
	collector.AddNode()
	if depth == 0 || n.state.IsTerminal() {
		collector.AddLeaf()
		return
	}

	n.expand()
	for _, child := range n.children {
		grow(child, depth-1, collector)
	}
}

// backup scores the subtree below n, children first.
func backup(n *node, evaluate game.Evaluate) error {
	for _, child := range n.children {
		if err := backup(child, evaluate); err != nil {
			return err
		}
	}
	return n.setScore(evaluate)
}

// setScore writes the node's own evaluation plus the best child score for the
// player to move: the maximum when the machine moves, the minimum otherwise.
func (n *node) setScore(evaluate game.Evaluate) error {
	own := evaluate(n.state)
	if n.isLeaf() {
		n.score = own
		return nil
	}

	switch n.mover {
	case game.Machine:
		best := math.Inf(-1)
		for _, child := range n.children {
			best = math.Max(best, child.score)
		}
		n.score = own + best
	case game.Human:
		worst := math.Inf(1)
		for _, child := range n.children {
			worst = math.Min(worst, child.score)
		}
		n.score = own + worst
	default:
		return fmt.Errorf("%w: node at ply %d has mover %v", game.ErrIllegalState, n.ply(), n.mover)
	}
	return nil
}
