package mcts

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/mctsplay/game"
)

// Inferencer is essentially a neural network: given a state it returns a probability for every action in the action
// space (indexed by game.Single), and the value of the state for the player to move.
type Inferencer interface {
	Infer(state game.State) (policy []float32, value float32)
}

// Result is a NaN tagged floating point, used to represent the outcome of a rollout.
type Result float32

const (
	noResultBits = 0x7FE00000
)

// noResult is the outcome of a rollout that was cut short before the game ended.
func noResult() Result {
	return Result(math32.Float32frombits(noResultBits))
}

// isNullResult returns true if the Result (a NaN tagged number) is noResult
func isNullResult(r Result) bool {
	b := math32.Float32bits(float32(r))
	return b == noResultBits
}
