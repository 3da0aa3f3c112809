package mcts

import (
	"time"

	"github.com/gorgonia/mctsplay/game"
)

/*
Here lies the search code, while node.go and tree.go handle the data structure stuff.

A playout runs the classic pipeline:
	SELECT, EXPAND, SIMULATE, BACKPROPAGATE.

The search is single threaded. Every playout works on its own clone of the state so the caller's state is never
touched.
*/

// Playout runs a single playout from the root to a leaf, expanding the leaf and evaluating it with a rollout.
// The state is mutated in place, so callers must pass in a copy.
func (t *MCTS) Playout(state game.State) {
	// SELECT
	id := t.root
	for !t.nodeFromNaughty(id).IsLeaf() {
		move, child := t.nodeFromNaughty(id).Select(t.PUCT)
		state.Apply(move)
		id = child.id
	}

	// EXPAND
	if !state.IsTerminal() {
		pairs, _ := t.policy.PolicyValue(state)
		t.nodeFromNaughty(id).Expand(pairs)
	}

	// SIMULATE
	res := t.evaluateRollout(state, t.RolloutLimit)
	value := float32(res)
	if isNullResult(res) {
		t.stats.CappedRollouts++
		value = 0
	}

	// BACKPROPAGATE. The value is from the point of view of the player to move at the leaf.
	t.nodeFromNaughty(id).UpdateRecursive(-value)
}

// evaluateRollout plays the state out with the rollout policy until the game ends or limit moves have been played.
//
// The result is from the point of view of the player to move when the rollout starts: 1 for a win, -1 for a loss and
// 0 for a draw. noResult is returned when the game has not ended after limit moves.
func (t *MCTS) evaluateRollout(state game.State, limit int) Result {
	player := state.ToMove()
	var i int
	for ; i < limit; i++ {
		if state.IsTerminal() {
			break
		}
		pairs := t.rollout.Policy(state)
		if len(pairs) == 0 {
			break
		}
		state.Apply(pairs[argmax(pairs)].Coord)
	}
	if i == limit && !state.IsTerminal() {
		t.warn("Rollout reached the move limit of %d without ending the game", limit)
		return noResult()
	}

	switch {
	case state.IsWinner(player):
		return 1
	case state.IsWinner(state.Opponent(player)):
		return -1
	}
	return 0
}

// GetMove runs playouts until the Timeout elapses (or the Budget is spent) and returns the move of the most visited
// child of the root. A playout that is running when the deadline passes is allowed to finish, and at least one
// playout is always run.
//
// Pass is returned if the root could not be expanded, e.g. because the game has ended.
func (t *MCTS) GetMove(state game.State) game.Single {
	start := time.Now()
	var deadline time.Time
	if t.Timeout > 0 {
		deadline = start.Add(t.Timeout)
	}
	t.stats = SearchStats{
		StartTime:  start,
		TreeReused: !t.Root().IsLeaf(),
	}
	t.log("SEARCH. Player %v. Reusing tree: %v", state.ToMove(), t.stats.TreeReused)

	for {
		t.Playout(state.Clone())
		t.stats.Playouts++

		if t.Budget > 0 && t.stats.Playouts >= int(t.Budget) {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
	}

	retVal := t.bestMove()
	t.stats.Duration = time.Since(start)
	t.stats.Nodes = t.Nodes()
	t.log("Playouts: %d Capped rollouts: %d Nodes: %d Took %v. Best: %v", t.stats.Playouts, t.stats.CappedRollouts, t.stats.Nodes, t.stats.Duration, retVal)
	return retVal
}

// bestMove returns the move of the most visited child of the root. The first child wins ties.
func (t *MCTS) bestMove() game.Single {
	retVal := game.Pass
	var most uint32
	for i, kid := range t.kids(t.root) {
		child := t.nodeFromNaughty(kid)
		t.log("\t%v", child)
		if i == 0 || child.visits > most {
			most = child.visits
			retVal = child.move
		}
	}
	return retVal
}

// UpdateWithMove advances the root of the tree. If the move is a child of the root, the child becomes the new root
// and the rest of the tree is released. Otherwise the whole tree is released and a fresh root is created.
func (t *MCTS) UpdateWithMove(move game.Single) {
	oldRoot := t.root
	if newRoot := t.Root().findChild(move); newRoot != nilNode {
		t.cleanup(oldRoot, newRoot)
		t.root = newRoot
		t.log("Advanced the root to %v. %d nodes kept", move, t.Nodes())
		return
	}
	t.cleanChildren(oldRoot)
	t.free(oldRoot)
	t.root = t.New(game.Pass, 1, nilNode)
	t.log("Move %v not found at the root. Starting from a fresh root", move)
}
