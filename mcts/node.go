package mcts

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gorgonia/mctsplay/game"
)

type Status uint32

const (
	Invalid Status = iota
	Active
)

func (a Status) String() string {
	switch a {
	case Invalid:
		return "Invalid"
	case Active:
		return "Active"
	}
	return "UNKNOWN STATUS"
}

// Node is a node in the search tree. Nodes live in the arena of the MCTS that created them.
//
// A *Node is only valid until the next node allocation of its tree: allocations may move the arena.
// Hold on to the node's ID across Expand calls instead.
type Node struct {
	move   game.Single // the move that led from the parent to this node
	parent naughty     // nilNode for the root. Not an owning reference.
	visits uint32      // N(s, a) in the literature
	status Status

	q     float32 // running mean of the values backpropagated through this node
	prior float32 // P(s, a), fixed at creation

	id   naughty // index into the arena
	tree *MCTS
}

func (n *Node) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "{NodeID: %v Move: %v, Prior: %v, Q: %v Visits %v Status: %v}", n.id, n.move, n.prior, n.q, n.visits, n.status)
}

// Move gets the move associated with the node
func (n *Node) Move() game.Single { return n.move }

// Visits is the number of backpropagations through the node.
func (n *Node) Visits() uint32 { return n.visits }

// Q is the mean value of the node.
func (n *Node) Q() float32 { return n.q }

// Prior is the prior probability given to the node when it was expanded.
func (n *Node) Prior() float32 { return n.prior }

func (n *Node) ID() int { return int(n.id) }

// IsValid returns true if the node has not been freed.
func (n *Node) IsValid() bool { return n.status != Invalid }

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool { return len(n.tree.children[n.id]) == 0 }

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nilNode }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	if n.parent == nilNode {
		return nil
	}
	return n.tree.nodeFromNaughty(n.parent)
}

// Children returns the children in order of creation.
func (n *Node) Children() []*Node {
	kids := n.tree.kids(n.id)
	retVal := make([]*Node, 0, len(kids))
	for _, kid := range kids {
		retVal = append(retVal, n.tree.nodeFromNaughty(kid))
	}
	return retVal
}

// Child returns the child reached by the move, or nil.
func (n *Node) Child(move game.Single) *Node {
	kid := n.findChild(move)
	if kid == nilNode {
		return nil
	}
	return n.tree.nodeFromNaughty(kid)
}

// Expand adds a child for every move that does not have one yet. Moves that already have a child keep their
// original prior.
func (n *Node) Expand(pairs []Pair) {
	// allocating may move the arena, so n must not be used after the first allocation.
	t, id := n.tree, n.id
	for _, p := range pairs {
		if t.nodeFromNaughty(id).findChild(p.Coord) != nilNode {
			continue
		}
		kid := t.New(p.Coord, p.Score, id)
		t.children[id] = append(t.children[id], kid)
	}
}

// Select selects the child with the highest upper confidence bound
//
// 	U(s, a) = Q(s, a) + c * P(s, a) * (sqrt(N(s)) / (1 + N(s, a)))
//
// Ties go to the child that was created first.
func (n *Node) Select(c float32) (game.Single, *Node) {
	tree := n.tree
	numerator := math32.Sqrt(float32(n.visits))

	best := nilNode
	bestValue := math32.Inf(-1)
	for _, kid := range tree.kids(n.id) {
		child := tree.nodeFromNaughty(kid)
		if v := child.q + child.bonus(c, numerator); v > bestValue {
			bestValue = v
			best = kid
		}
	}
	if best == nilNode {
		panic("Cannot select a child of a leaf")
	}
	child := tree.nodeFromNaughty(best)
	return child.move, child
}

// U is the exploration bonus of the node under the exploration constant c.
func (n *Node) U(c float32) float32 {
	parent := n.Parent()
	if parent == nil {
		return 0
	}
	return n.bonus(c, math32.Sqrt(float32(parent.visits)))
}

func (n *Node) bonus(c, sqrtParentVisits float32) float32 {
	return c * n.prior * sqrtParentVisits / (1 + float32(n.visits))
}

// Update adds a value to the running mean
func (n *Node) Update(value float32) {
	n.visits++
	n.q += (value - n.q) / float32(n.visits)
}

// UpdateRecursive updates the node and all its ancestors. The value flips sign at every level up, as the
// players alternate.
func (n *Node) UpdateRecursive(value float32) {
	tree := n.tree
	for id := n.id; id != nilNode; {
		node := tree.nodeFromNaughty(id)
		node.Update(value)
		value = -value
		id = node.parent
	}
}

// countChildren counts the number of children node a node has and number of grandkids recursively
func (n *Node) countChildren() (retVal int) {
	tree := n.tree
	for _, kid := range tree.kids(n.id) {
		retVal += tree.nodeFromNaughty(kid).countChildren()
		retVal++ // plus the child itself
	}
	return
}

// findChild finds the child that has the wanted move
func (n *Node) findChild(move game.Single) naughty {
	tree := n.tree
	for _, kid := range tree.kids(n.id) {
		if tree.nodeFromNaughty(kid).move == move {
			return kid
		}
	}
	return nilNode
}

func (n *Node) reset() {
	n.move = game.Pass
	n.parent = nilNode
	n.visits = 0
	n.status = Invalid
	n.q = 0
	n.prior = 0
}
