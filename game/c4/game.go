package c4

import (
	"fmt"

	"github.com/gorgonia/mctsplay/game"
	"github.com/rs/zerolog/log"
)

var (
	_ game.Passer   = &Game{}
	_ game.Resetter = &Game{}
)

type Game struct {
	b          *Board
	history    []game.PlayerMove
	nextToMove game.Player
	passCount  int
}

//New creates a new game with a board of (rows,cols) and N to win (connect4 being 4 to win).
// Black moves first.
func New(rows, cols, N int) *Game {
	b := newBoard(rows, cols, N)
	history := make([]game.PlayerMove, 0, rows*cols)
	return &Game{
		b:          b,
		history:    history,
		nextToMove: game.Player(game.Black),
	}
}

// ConnectFour creates the standard 6x7, four to win game.
func ConnectFour() *Game { return New(6, 7, 4) }

func (g *Game) BoardSize() (int, int) { return g.b.rows(), g.b.cols() }

func (g *Game) ToMove() game.Player { return g.nextToMove }

func (g *Game) Opponent(p game.Player) game.Player {
	switch p {
	case game.Player(game.Black):
		return game.Player(game.White)
	case game.Player(game.White):
		return game.Player(game.Black)
	}
	panic("Unreachable")
}

func (g *Game) LastMove() game.PlayerMove {
	if len(g.history) > 0 {
		return g.history[len(g.history)-1]
	}
	return game.PlayerMove{Player: game.Player(game.None), Single: game.Pass}
}

// Passes returns the number of consecutive passes.
func (g *Game) Passes() int { return g.passCount }

func (g *Game) MoveNumber() int { return len(g.history) }

func (g *Game) Check(a game.Single) bool {
	_, _, err := g.b.check(game.PlayerMove{Player: g.nextToMove, Single: a})
	return err == nil
}

// LegalActions returns the columns that still have room. Passes are never offered.
func (g *Game) LegalActions() []game.Single {
	if g.IsTerminal() {
		return nil
	}
	cols := g.b.cols()
	retVal := make([]game.Single, 0, cols)
	for c := 0; c < cols; c++ {
		if g.b.it[0][c] == game.None {
			retVal = append(retVal, game.Single(c))
		}
	}
	return retVal
}

// Apply drops a piece into the column. Full columns and columns off the board are logged and leave the game
// unchanged.
func (g *Game) Apply(a game.Single) {
	if a.IsPass() {
		g.Pass()
		return
	}
	m := game.PlayerMove{Player: g.nextToMove, Single: a}
	if err := g.b.Apply(m); err != nil {
		log.Warn().Err(err).Str("game", "c4").Int("move", g.MoveNumber()).Msgf("Illegal move %v by %v ignored", a, g.nextToMove)
		return
	}
	g.history = append(g.history, m)
	g.passCount = 0
	g.nextToMove = g.Opponent(g.nextToMove)
}

// Pass forfeits the turn of the player to move. Two passes in a row end the game.
func (g *Game) Pass() {
	g.history = append(g.history, game.PlayerMove{Player: g.nextToMove, Single: game.Pass})
	g.passCount++
	g.nextToMove = g.Opponent(g.nextToMove)
}

func (g *Game) IsWinner(p game.Player) bool { return game.Player(g.b.checkWin()) == p }

func (g *Game) IsTerminal() bool {
	if g.b.checkWin() != game.None {
		return true
	}
	if g.passCount >= 2 {
		return true
	}
	return g.b.full()
}

func (g *Game) Clone() game.State {
	history2 := make([]game.PlayerMove, len(g.history), cap(g.history))
	copy(history2, g.history)
	return &Game{
		b:          g.b.clone(),
		history:    history2,
		nextToMove: g.nextToMove,
		passCount:  g.passCount,
	}
}

func (g *Game) Reset() {
	data := g.b.raw()
	for i := range data {
		data[i] = game.None
	}
	g.history = g.history[:0]
	g.passCount = 0
	g.nextToMove = game.Player(game.Black)
}

func (g *Game) Board() []game.Colour { return g.b.raw() }

func (g *Game) Format(s fmt.State, c rune) { g.b.Format(s, c) }
