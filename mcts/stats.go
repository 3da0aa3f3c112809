package mcts

import "time"

// SearchStats describes a single GetMove.
type SearchStats struct {
	StartTime      time.Time
	Duration       time.Duration
	Playouts       int
	CappedRollouts int  // rollouts that hit the RolloutLimit before the game ended
	Nodes          int  // live nodes when the search finished
	TreeReused     bool // the root already had children when the search started
}
