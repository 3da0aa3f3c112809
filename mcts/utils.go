package mcts

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/mctsplay/game"
)

// Pair is a tuple of a move and its probability.
type Pair struct {
	Coord game.Single
	Score float32
}

// argmax returns the index of the pair with the highest score. The first one wins ties.
func argmax(a []Pair) int {
	var retVal int
	var max float32 = math32.Inf(-1)
	for i := range a {
		if a[i].Score > max {
			max = a[i].Score
			retVal = i
		}
	}
	return retVal
}
