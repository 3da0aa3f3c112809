package mnk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gorgonia/mctsplay/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestTicTacToe(t *testing.T) {
	var X = game.Colour(Cross)
	var O = game.Colour(Nought)
	TTT := TicTacToe()
	TTT.board = []game.Colour{
		X, O, X,
		O, X, O,
		O, O, X,
	}
	if !TTT.isWinner(Cross) {
		t.Error("expected X to be winner")
	}
	if !TTT.IsTerminal() {
		t.Error("expected game to be ended")
	}

	TTT.board = []game.Colour{
		X, O, O,
		X, O, X,
		O, X, X,
	}
	if !TTT.isWinner(Nought) {
		t.Error("expected O to be winner")
	}
	if TTT.isWinner(Cross) {
		t.Error("expected X not to be winner")
	}
}

func TestGomoku(t *testing.T) {
	var X = game.Colour(Cross)
	var O = game.Colour(Nought)
	var Z = game.None
	g := New(7, 7, 5)
	g.board = []game.Colour{
		Z, X, Z, Z, Z, Z, Z,
		Z, Z, X, Z, Z, Z, Z,
		Z, Z, Z, X, Z, Z, Z,
		Z, Z, Z, Z, X, Z, Z,
		Z, Z, Z, Z, Z, X, Z,
		Z, Z, Z, Z, Z, X, Z,
		Z, Z, Z, Z, Z, X, Z,
	}
	if !g.isWinner(Cross) {
		t.Error("expected X to be winner")
	}
	if !g.IsTerminal() {
		t.Error("expected game to be ended")
	}

	g.board = []game.Colour{
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, O, Z,
		Z, Z, Z, Z, O, Z, Z,
		Z, Z, Z, O, Z, Z, Z,
		Z, Z, O, Z, Z, Z, Z,
		Z, O, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
	}
	if !g.isWinner(Nought) {
		t.Error("expected O to be winner")
	}
	if !g.IsTerminal() {
		t.Error("expected game to be ended")
	}

	g.board = []game.Colour{
		X, X, X, X, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, O,
	}
	if g.isWinner(Cross) {
		t.Error("four in a row is not enough in gomoku")
	}
	if g.IsTerminal() {
		t.Error("expected game to be running")
	}
}

func TestTicTacToeEnded(t *testing.T) {
	var X = game.Colour(Cross)
	var O = game.Colour(Nought)
	var Z = game.None

	cases := []struct {
		name   string
		board  []game.Colour
		ended  bool
		winner game.Player
	}{
		{"X column", []game.Colour{O, Z, X, Z, Z, X, Z, O, X}, true, Cross},
		{"O top row", []game.Colour{O, O, O, Z, Z, X, X, O, X}, true, Nought},
		{"O bottom row", []game.Colour{Z, Z, X, X, O, X, O, O, O}, true, Nought},
		{"O diagonal", []game.Colour{O, Z, X, X, O, X, O, Z, O}, true, Nought},
		{"full board draw", []game.Colour{X, O, X, X, O, O, O, X, X}, true, game.Player(game.None)},
		{"running", []game.Colour{X, Z, Z, Z, O, Z, Z, Z, Z}, false, game.Player(game.None)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			TTT := FromBoard(3, 3, 3, c.board)
			ended, winner := game.Ended(TTT)
			assert.Equal(t, c.ended, ended)
			assert.Equal(t, c.winner, winner)
			if c.ended {
				assert.Empty(t, TTT.LegalActions())
			}
		})
	}
}

func TestMNK_Apply(t *testing.T) {
	assert := assert.New(t)
	g := TicTacToe()
	assert.Equal(Cross, g.ToMove())
	assert.Len(g.LegalActions(), 9)

	g.Apply(4)
	assert.Equal(Nought, g.ToMove())
	assert.Equal(game.Colour(Cross), g.Board()[4])
	assert.Equal(game.PlayerMove{Player: Cross, Single: 4}, g.LastMove())
	assert.Len(g.LegalActions(), 8)

	// illegal moves are ignored, with a warning
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	g.Apply(4)
	g.Apply(9)
	g.Apply(game.Pass)
	assert.Equal(Nought, g.ToMove())
	assert.Equal(1, g.MoveNumber())

	warnings := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(warnings, 3)
	assert.Contains(warnings[0], `"level":"warn"`)
	assert.Contains(warnings[0], "Illegal move 4 by")
	assert.Contains(warnings[1], "Illegal move 9 by")

	buf.Reset()
	g.Apply(0)
	assert.Empty(buf.String())

	g.Reset()
	assert.Equal(Cross, g.ToMove())
	assert.Equal(0, g.MoveNumber())
}

func TestMNK_Clone(t *testing.T) {
	g := TicTacToe()
	g.Apply(0)
	c := g.Clone().(*MNK)
	c.Apply(1)

	assert.Equal(t, game.None, g.Board()[1], "clone must not share the board")
	assert.Equal(t, Nought, g.ToMove())
	assert.Equal(t, Cross, c.ToMove())
	assert.Equal(t, 1, g.MoveNumber())
	assert.Equal(t, 2, c.MoveNumber())
}

func TestFromBoard(t *testing.T) {
	var X = game.Colour(Cross)
	var O = game.Colour(Nought)
	var Z = game.None
	g := FromBoard(3, 3, 3, []game.Colour{X, Z, Z, Z, Z, Z, Z, Z, Z})
	assert.Equal(t, Nought, g.ToMove())

	g = FromBoard(3, 3, 3, []game.Colour{X, O, Z, Z, Z, Z, Z, Z, Z})
	assert.Equal(t, Cross, g.ToMove())
	assert.Equal(t, []game.Single{2, 3, 4, 5, 6, 7, 8}, g.LegalActions())
}
