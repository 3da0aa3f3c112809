package mctsplay

import (
	"github.com/gorgonia/mctsplay/game"
	"github.com/gorgonia/mctsplay/mcts"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ Observer = &Agent{}

// An Agent is a player that picks its moves with a Monte Carlo tree search.
type Agent struct {
	MCTS   *mcts.MCTS
	Player game.Player

	// Statistics
	Wins float32
	Loss float32
	Draw float32

	name   string
	reuse  bool
	logger zerolog.Logger
}

// NewAgent creates an agent from the configuration.
func NewAgent(conf Config) (*Agent, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	name := conf.Name
	if name == "" {
		name = "MCTS"
	}
	return &Agent{
		MCTS:   mcts.New(conf.MCTSConf, conf.Policy),
		Player: game.Player(game.None),
		name:   name,
		reuse:  conf.ReuseTree,
		logger: log.Logger.Level(zerolog.InfoLevel).With().Str("agent", name).Logger(),
	}, nil
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) String() string { return a.name }

// SetLogger replaces the logger of the agent and of its search.
func (a *Agent) SetLogger(l zerolog.Logger) {
	a.logger = l.With().Str("agent", a.name).Logger()
	a.MCTS.SetLogger(a.logger)
}

// SetPlayerInd records which side the agent is playing.
func (a *Agent) SetPlayerInd(p game.Player) { a.Player = p }

// GetAction searches the state and returns the move to play. If there are no legal moves, a warning is logged and
// false is returned.
//
// Unless the agent reuses its tree, the search tree is advanced with a Pass rather than the move played, so every
// call searches from a fresh tree.
func (a *Agent) GetAction(state game.State) (game.Single, bool) {
	if len(state.LegalActions()) == 0 {
		a.logger.Warn().Msgf("%v has no legal moves", a.Player)
		return game.Pass, false
	}
	move := a.MCTS.GetMove(state)
	if a.reuse {
		a.MCTS.UpdateWithMove(move)
	} else {
		a.MCTS.UpdateWithMove(game.Pass)
	}
	stats := a.MCTS.Stats()
	a.logger.Debug().
		Int("playouts", stats.Playouts).
		Int("capped", stats.CappedRollouts).
		Dur("took", stats.Duration).
		Msgf("%v plays %v", a.Player, move)
	return move, true
}

// Observe advances the search tree past a move of the opponent. It does nothing unless the agent reuses its tree.
func (a *Agent) Observe(move game.Single) {
	if a.reuse {
		a.MCTS.UpdateWithMove(move)
	}
}

// Reset throws away the search tree.
func (a *Agent) Reset() { a.MCTS.Reset() }

func (a *Agent) resetStats() {
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
}
