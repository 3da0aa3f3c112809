package mctsplay

import "github.com/gorgonia/mctsplay/game"

// dummyInferer gives every action of the action space the same probability, and values every state as a loss
// for White.
type dummyInferer struct {
	outputSize int
}

func (d dummyInferer) Infer(state game.State) (policy []float32, value float32) {
	switch state.ToMove() {
	case game.Player(game.Black):
		value = 1
	case game.Player(game.White):
		value = -1
	}
	policy = make([]float32, d.outputSize)
	for i := range policy {
		policy[i] = 1 / float32(d.outputSize)
	}
	return policy, value
}
