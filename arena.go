package mctsplay

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Arena is where two agents play a game against each other.
type Arena struct {
	r    *rand.Rand
	game game.State
	A, B *Agent

	// state
	currentPlayer *Agent
	buf           bytes.Buffer
	logger        zerolog.Logger

	name       string
	gameNumber int // which game is this in
}

// MakeArena makes an arena given a game.
func MakeArena(g game.State, a, b *Agent, name string) Arena {
	if name == "" {
		name = "UNKNOWN GAME"
	}
	return Arena{
		r:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		game: g,
		A:    a,
		B:    b,
		name: name,
	}
}

// NewArena makes an arena that logs the games it plays. The log is retrieved with Log.
func NewArena(g game.State, a, b *Agent, name string) *Arena {
	ar := MakeArena(g, a, b, name)
	ar.logger = newArenaLogger(&ar.buf, ar.name)
	return &ar
}

func newArenaLogger(w io.Writer, name string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("arena", name).Logger()
}

// Seed reseeds the coin that decides who moves first.
func (a *Arena) Seed(seed uint64) { a.r.Seed(seed) }

// Play plays the game to the end and returns the winner. If it is a draw, the returned player is None.
//
// A player that has no move to make passes if the game allows it. Otherwise the player forfeits the game: its
// opponent is the winner and an error with the cause ErrForfeit is returned.
func (a *Arena) Play() (winner game.Player, err error) {
	first := a.game.ToMove()
	second := a.game.Opponent(first)
	if a.r.Intn(2) == 0 {
		a.A.SetPlayerInd(first)
		a.B.SetPlayerInd(second)
		a.currentPlayer = a.A
	} else {
		a.A.SetPlayerInd(second)
		a.B.SetPlayerInd(first)
		a.currentPlayer = a.B
	}
	a.logger.Info().Msgf("Game %d. %v plays %v, %v plays %v", a.gameNumber, a.A, a.A.Player, a.B, a.B.Player)

	var ended bool
	for ended, winner = game.Ended(a.game); !ended; ended, winner = game.Ended(a.game) {
		player := a.currentPlayer
		best, ok := player.GetAction(a.game)
		if !ok {
			if p, canPass := a.game.(game.Passer); canPass {
				a.logger.Info().Msgf("%v (%v) has no move and passes", player, player.Player)
				p.Pass()
				a.other().Observe(game.Pass)
				a.switchPlayer()
				continue
			}
			winner = a.game.Opponent(player.Player)
			err = errors.Wrapf(ErrForfeit, "%v (%v) has no move to make", player, player.Player)
			a.logger.Warn().Err(err).Msg("Forfeit")
			break
		}
		a.logger.Debug().Msgf("Current Player: %v. Best Move %v", player.Player, best)
		a.game.Apply(best)
		a.other().Observe(best)
		a.switchPlayer()
	}

	switch winner {
	case game.Player(game.None):
		a.A.Draw++
		a.B.Draw++
	case a.A.Player:
		a.A.Wins++
		a.B.Loss++
	case a.B.Player:
		a.B.Wins++
		a.A.Loss++
	}
	a.logger.Info().Msgf("Winner %v", winner)

	a.A.Reset()
	a.B.Reset()
	a.gameNumber++
	return winner, err
}

func (a *Arena) GameNumber() int       { return a.gameNumber }
func (a *Arena) Name() string          { return a.name }
func (a *Arena) State() game.State     { return a.game }
func (a *Arena) CurrentPlayer() *Agent { return a.currentPlayer }

// Log writes the log of the games played so far.
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
}

func (a *Arena) other() *Agent {
	if a.currentPlayer == a.A {
		return a.B
	}
	return a.A
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}
