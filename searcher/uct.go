package searcher

import (
	"math"
	"sync"

	"reversi/game"
	"reversi/meta"
)

const WIN = 1.0   // Reward for winning outcome
const LOSS = -WIN // Reward for loss outcome, also the virtual loss of an in-flight playout

// uctNode is a node of the playout tree. Statistics are kept from the
// perspective of mover, the player whose move led to the node.
type uctNode struct {
	sync.RWMutex
	parent   *uctNode
	mover    game.Player
	moves    []game.Square // Legal moves of the player to move, empty if terminal
	children []*uctNode    // children[i] follows moves[i]
	rewards  float64
	visits   int
}

func newUCTNode(parent *uctNode, mover game.Player, state *game.GameState) *uctNode {
	var moves []game.Square
	if !state.IsTerminal() {
		moves = state.LegalMoves(state.Next())
	}
	return &uctNode{
		parent:   parent,
		mover:    mover,
		moves:    moves,
		children: make([]*uctNode, 0, len(moves)),
	}
}

// selectOrExpand adds the next unexpanded child or, once every move is
// expanded, descends to the child with the highest UCB1 score. The chosen
// child carries a virtual loss until its playout is backed up.
func (n *uctNode) selectOrExpand(state *game.GameState) (*uctNode, *game.GameState, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, state, false
	}

	mover := state.Next()
	if len(n.children) < len(n.moves) {
		next := state.Apply(mover, n.moves[len(n.children)])
		child := newUCTNode(n, mover, next)
		child.applyLoss()
		n.children = append(n.children, child)
		return child, next, true
	}

	ith := n.pick()
	child := n.children[ith]
	child.applyLoss()
	return child, state.Apply(mover, n.moves[ith]), false
}

// pick must be called with n locked and all children expanded.
func (n *uctNode) pick() int {
	total := 0
	for _, child := range n.children {
		total += child.value()
	}
	normalizer := meta.C_SQUARED * math.Log(float64(total))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := child.score(normalizer); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *uctNode) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += LOSS
	n.visits++
}

func (n *uctNode) score(normalizer float64) float64 {
	n.RLock()
	defer n.RUnlock()

	// UCB1 = q/n + sqrt(c^2*ln(N)/n)
	v := float64(n.visits)
	return n.rewards/v + math.Sqrt(normalizer/v)
}

// backup records a finished playout and returns the parent.
func (n *uctNode) backup(winner game.Player, decided bool) *uctNode {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.rewards -= LOSS
		n.visits--
	}

	switch {
	case !decided:
	case winner == n.mover:
		n.rewards += WIN
	default:
		n.rewards += LOSS
	}
	n.visits++

	return n.parent
}

func (n *uctNode) value() int {
	n.RLock()
	defer n.RUnlock()

	return n.visits
}

// mostVisited returns the move of the most visited child, the first one on ties.
func (n *uctNode) mostVisited() game.Square {
	n.RLock()
	defer n.RUnlock()

	if len(n.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxValue := n.children[0].value()
	for i, child := range n.children[1:] {
		if v := child.value(); v > maxValue {
			maxValue = v
			bestIndex = i + 1
		}
	}
	return n.moves[bestIndex]
}
