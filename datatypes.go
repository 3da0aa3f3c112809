package mctsplay

import (
	"github.com/gorgonia/mctsplay/game"
	"github.com/gorgonia/mctsplay/mcts"
	"github.com/pkg/errors"
)

// ErrForfeit is the cause of the error returned when a player has no move to make in a game that does not allow
// passing.
var ErrForfeit = errors.New("forfeit")

type Config struct {
	Name     string
	MCTSConf mcts.Config

	// Policy is used to expand the search tree. nil means a uniform prior.
	Policy mcts.PolicyValuer

	// ReuseTree makes the agent keep the subtree of the move it played, and of the move its opponent replied with.
	// When false the agent starts every search from a fresh tree.
	ReuseTree bool
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	return errors.WithMessagef(c.MCTSConf.Validate(), "Invalid MCTS configuration for %q", c.Name)
}

// Player is anything that can be asked for a move by a game loop.
type Player interface {
	// SetPlayerInd tells the player which side it is playing.
	SetPlayerInd(p game.Player)

	// GetAction returns the move to play. false is returned if the player has no move to make.
	GetAction(state game.State) (game.Single, bool)
}

// Observer is a Player that wants to be told of the moves of its opponent.
type Observer interface {
	Player
	Observe(move game.Single)
}
