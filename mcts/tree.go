package mcts

import (
	"runtime"
	"time"

	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
)

// Config is the structure to configure the MCTS
type Config struct {
	// PUCT is the exploration constant c in Q + c*P*sqrt(N)/(1+n). Must be positive.
	PUCT float32

	// Timeout is the wall clock budget of a single GetMove. It is only checked between playouts.
	Timeout time.Duration

	RolloutLimit int    // maximum number of moves played by a rollout
	Budget       int32  // maximum number of playouts per GetMove. 0 means the search is bounded by Timeout alone.
	Seed         uint64 // seed of the default rollout policy. 0 seeds from the clock.
}

// DefaultConfig returns the configuration with the classic values: an exploration constant of 5 and a 3 second budget.
func DefaultConfig() Config {
	return Config{
		PUCT:         5,
		Timeout:      3 * time.Second,
		RolloutLimit: 1000,
	}
}

// Validate returns an error describing the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.PUCT <= 0:
		return errors.Errorf("PUCT must be positive. Got %v", c.PUCT)
	case c.Timeout < 0:
		return errors.Errorf("Timeout cannot be negative. Got %v", c.Timeout)
	case c.RolloutLimit <= 0:
		return errors.Errorf("RolloutLimit must be positive. Got %d", c.RolloutLimit)
	case c.Budget < 0:
		return errors.Errorf("Budget cannot be negative. Got %d", c.Budget)
	case c.Timeout == 0 && c.Budget == 0:
		return errors.New("Either Timeout or Budget has to be set")
	}
	return nil
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// MCTS owns the search tree and runs the search. The goal is to build MCTS without much pointer chasing: all
// nodes are kept in one arena and refer to each other by index.
//
// An MCTS is not safe for concurrent use.
type MCTS struct {
	Config
	policy  PolicyValuer // expansion
	rollout Policy

	// memory related fields
	nodes    []Node
	children [][]naughty
	freelist []naughty

	root  naughty
	stats SearchStats

	lumberjack
}

// New creates a new search tree. The policy is used to expand the nodes at the frontier of the tree.
// A nil policy means UniformPolicy.
//
// New panics if the configuration is not valid.
func New(conf Config, policy PolicyValuer) *MCTS {
	if err := conf.Validate(); err != nil {
		panic(errors.WithMessage(err, "MCTS config is not valid. Unable to proceed").Error())
	}
	if policy == nil {
		policy = UniformPolicy{}
	}
	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	retVal := &MCTS{
		Config:  conf,
		policy:  policy,
		rollout: NewRandomRollout(seed),

		nodes:    make([]Node, 0, 1024),
		children: make([][]naughty, 0, 1024),

		lumberjack: makeLumberJack(),
	}
	retVal.root = retVal.New(game.Pass, 1, nilNode)
	return retVal
}

// New creates a new node
func (t *MCTS) New(move game.Single, prior float32, parent naughty) (retVal naughty) {
	n := t.alloc()
	N := t.nodeFromNaughty(n)
	N.move = move
	N.prior = prior
	N.parent = parent
	N.visits = 0
	N.q = 0
	N.status = Active
	return n
}

// SetRolloutPolicy replaces the policy used to play out positions to the end.
func (t *MCTS) SetRolloutPolicy(p Policy) { t.rollout = p }

// SetPolicy replaces the policy used to expand nodes.
func (t *MCTS) SetPolicy(p PolicyValuer) { t.policy = p }

// Root returns the current root of the tree.
func (t *MCTS) Root() *Node { return t.nodeFromNaughty(t.root) }

// Nodes returns the number of live nodes.
func (t *MCTS) Nodes() int { return len(t.nodes) - len(t.freelist) }

// Stats returns the statistics of the last search.
func (t *MCTS) Stats() SearchStats { return t.stats }

// alloc tries to get a node from the free list. If none is found a new node is allocated into the master arena
func (t *MCTS) alloc() naughty {
	l := len(t.freelist)
	if l == 0 {
		N := Node{
			tree:   t,
			id:     naughty(len(t.nodes)),
			parent: nilNode,
		}
		t.nodes = append(t.nodes, N)
		t.children = append(t.children, nil)
		return naughty(len(t.nodes) - 1)
	}

	i := t.freelist[l-1]
	t.freelist = t.freelist[:l-1]
	return i
}

// free puts the node back into the freelist.
//
// There is no reference tracking: the caller has to make sure nothing refers to n any more.
func (t *MCTS) free(n naughty) {
	t.children[n] = t.children[n][:0]
	t.freelist = append(t.freelist, n)
	t.nodeFromNaughty(n).reset()
}

// cleanup frees the old root and every subtree hanging off it, except the subtree of the new root.
func (t *MCTS) cleanup(oldRoot, newRoot naughty) {
	for _, kid := range t.kids(oldRoot) {
		if kid != newRoot {
			t.cleanChildren(kid)
			t.free(kid)
		}
	}
	t.free(oldRoot)
	t.nodeFromNaughty(newRoot).parent = nilNode
}

// cleanChildren frees all the descendants of root
func (t *MCTS) cleanChildren(root naughty) {
	for _, kid := range t.kids(root) {
		t.cleanChildren(kid) // recursively clean children
		t.free(kid)
	}
	t.children[root] = t.children[root][:0] // empty it
}

// Reset throws away the whole tree and starts again from a fresh root.
func (t *MCTS) Reset() {
	t.nodes = t.nodes[:0]
	t.children = t.children[:0]
	t.freelist = t.freelist[:0]
	t.stats = SearchStats{}
	t.root = t.New(game.Pass, 1, nilNode)
	runtime.GC()
}

// nodeFromNaughty gets the node given the pointer.
func (t *MCTS) nodeFromNaughty(ptr naughty) *Node { return &t.nodes[int(ptr)] }

// kids returns the children of a node
func (t *MCTS) kids(of naughty) []naughty { return t.children[of] }
