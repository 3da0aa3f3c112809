// Package mctsplay plays two player games with agents that search with Monte Carlo tree search.
package mctsplay

import (
	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
)

// Match is the top level structure and the entry point of the API. Two agents play a series of games in an arena,
// and their results are recorded.
type Match struct {
	Arena
	Statistics
}

// New creates a match between two agents configured by a and b. The game has to be resettable to be played more
// than once.
func New(g game.Resetter, a, b Config) (*Match, error) {
	if a.Name == "" {
		a.Name = "A"
	}
	if b.Name == "" {
		b.Name = "B"
	}
	if a.Name == b.Name {
		return nil, errors.Errorf("Both agents are called %q", a.Name)
	}
	A, err := NewAgent(a)
	if err != nil {
		return nil, err
	}
	B, err := NewAgent(b)
	if err != nil {
		return nil, err
	}

	retVal := &Match{
		Arena:      MakeArena(g, A, B, ""),
		Statistics: makeStatistics(),
	}
	retVal.logger = newArenaLogger(&retVal.buf, retVal.name)
	return retVal, nil
}

// Bout plays n games. Forfeits count as losses; any other error stops the bout.
func (m *Match) Bout(n int) error {
	g, ok := m.game.(game.Resetter)
	if !ok {
		return errors.Errorf("Cannot play more than one game of %T", m.game)
	}
	for i := 0; i < n; i++ {
		g.Reset()
		if _, err := m.Play(); err != nil && errors.Cause(err) != ErrForfeit {
			return errors.WithMessagef(err, "Game %d", m.gameNumber)
		}
		m.update(m.A)
		m.update(m.B)
	}
	return nil
}
