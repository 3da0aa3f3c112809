package mcts

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/mctsplay/game"
	"golang.org/x/exp/rand"
	"gorgonia.org/vecf32"
)

// Policy scores the legal actions of a state. It is used to play a state out to the end.
type Policy interface {
	Policy(state game.State) []Pair
}

// PolicyValuer scores the legal actions of a state and evaluates the state for the player to move. It is used to
// expand the frontier of the tree.
type PolicyValuer interface {
	PolicyValue(state game.State) (pairs []Pair, value float32)
}

// PolicyFunc is a function that acts as a Policy.
type PolicyFunc func(state game.State) []Pair

func (f PolicyFunc) Policy(state game.State) []Pair { return f(state) }

// PolicyValueFunc is a function that acts as a PolicyValuer.
type PolicyValueFunc func(state game.State) ([]Pair, float32)

func (f PolicyValueFunc) PolicyValue(state game.State) ([]Pair, float32) { return f(state) }

// UniformPolicy gives every legal action the same probability. The value of any state is 0.
type UniformPolicy struct{}

func (UniformPolicy) Policy(state game.State) []Pair {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil
	}
	p := 1 / float32(len(actions))
	retVal := make([]Pair, 0, len(actions))
	for _, a := range actions {
		retVal = append(retVal, Pair{Coord: a, Score: p})
	}
	return retVal
}

func (u UniformPolicy) PolicyValue(state game.State) ([]Pair, float32) { return u.Policy(state), 0 }

// RandomRollout gives every legal action an independent uniformly random score, so that picking the best scored
// action is picking a random action.
type RandomRollout struct {
	rand *rand.Rand
}

// NewRandomRollout creates a RandomRollout with the given seed.
func NewRandomRollout(seed uint64) *RandomRollout {
	return &RandomRollout{rand: rand.New(rand.NewSource(seed))}
}

func (r *RandomRollout) Policy(state game.State) []Pair {
	actions := state.LegalActions()
	retVal := make([]Pair, 0, len(actions))
	for _, a := range actions {
		retVal = append(retVal, Pair{Coord: a, Score: r.rand.Float32()})
	}
	return retVal
}

// InferencePolicy turns an Inferencer into a PolicyValuer. The probabilities of the legal actions are renormalised
// to sum to 1. If the Inferencer gives the legal actions no probability at all, they are given the same probability.
type InferencePolicy struct {
	Inferencer
}

func (p InferencePolicy) Policy(state game.State) []Pair {
	pairs, _ := p.PolicyValue(state)
	return pairs
}

func (p InferencePolicy) PolicyValue(state game.State) ([]Pair, float32) {
	actions := state.LegalActions()
	policy, value := p.Infer(state)
	if len(actions) == 0 {
		return nil, value
	}

	scores := make([]float32, len(actions))
	for i, a := range actions {
		if int(a) >= 0 && int(a) < len(policy) {
			scores[i] = policy[a]
		}
	}

	if legalSum := vecf32.Sum(scores); legalSum > math32.SmallestNonzeroFloat32 {
		// re normalize
		vecf32.Scale(scores, 1/legalSum)
	} else {
		prob := 1 / float32(len(scores))
		for i := range scores {
			scores[i] = prob
		}
	}

	retVal := make([]Pair, len(actions))
	for i, a := range actions {
		retVal[i] = Pair{Coord: a, Score: scores[i]}
	}
	return retVal, value
}
