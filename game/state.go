package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }

// Single represents an action as a single number. Board games use it as a rowmajor index of the cell
// that is played; other games are free to enumerate their action space however they see fit.
//		- -1 represents the "pass" move
//		- -2 represents the "resignation" move
type Single int32

const (
	Pass   Single = -1
	Resign Single = -2
)

// IsResignation returns true when the coordinate represents a "resignation" move
func (c Single) IsResignation() bool { return c == Resign }

// IsPass returns true when the coordinate represents a "pass" move
func (c Single) IsPass() bool { return c == Pass }

// State is the capability a game has to offer for the search to be able to play it.
//
// The game must be a two player, alternating, zero-sum game of perfect information.
type State interface {
	LegalActions() []Single   // legal actions for the player to move. Empty when the game has ended.
	Apply(a Single)           // applies the action in place. The required side effect is that ToMove() changes.
	IsTerminal() bool         // has the game ended?
	IsWinner(p Player) bool   // has p won?
	Clone() State             // a deep copy, independent of the receiver
	ToMove() Player           // the player to move
	Opponent(p Player) Player // the other player
}

// Passer is any State that allows the player to move to forfeit its turn.
type Passer interface {
	State
	Pass()
}

// Resetter is any State that can be reset to its starting position.
type Resetter interface {
	State
	Reset()
}

// Winner returns the winner of an ended game. None is returned for a draw or for a game that has not ended.
func Winner(s State) Player {
	p := s.ToMove()
	switch {
	case s.IsWinner(p):
		return p
	case s.IsWinner(s.Opponent(p)):
		return s.Opponent(p)
	}
	return Player(None)
}

// Ended checks if the game has ended. If it has, who is the winner?
func Ended(s State) (ended bool, winner Player) {
	if !s.IsTerminal() {
		return false, Player(None)
	}
	return true, Winner(s)
}
