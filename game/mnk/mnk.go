package mnk

import (
	"fmt"

	"github.com/gorgonia/mctsplay/game"
	"github.com/rs/zerolog/log"
)

var (
	Cross  = game.Player(game.Black)
	Nought = game.Player(game.White)
)

var _ game.Resetter = &MNK{}

// MNK is a representation of M,N,K games - a game is played on a MxN board. K in a row to win.
// Cross always moves first.
type MNK struct {
	board   []game.Colour
	m, n, k int

	nextToMove game.Player
	history    []game.PlayerMove
}

// New creates a new MNK game
func New(m, n, k int) *MNK {
	return &MNK{
		board:      make([]game.Colour, m*n),
		history:    make([]game.PlayerMove, 0, m*n),
		m:          m,
		n:          n,
		k:          k,
		nextToMove: Cross,
	}
}

// TicTacToe creates a new MNK game for Tic Tac Toe
func TicTacToe() *MNK { return New(3, 3, 3) }

// FromBoard creates a M,N,K game from a rowmajor board. The player to move is derived from the number of stones.
func FromBoard(m, n, k int, board []game.Colour) *MNK {
	g := New(m, n, k)
	copy(g.board, board)
	var crosses, noughts int
	for _, c := range g.board {
		switch c {
		case game.Colour(Cross):
			crosses++
		case game.Colour(Nought):
			noughts++
		}
	}
	if crosses > noughts {
		g.nextToMove = Nought
	}
	return g
}

func (g *MNK) Format(s fmt.State, c rune) {
	for i, c := range g.board {
		if i%g.n == 0 {
			fmt.Fprint(s, "⎢ ")
		}
		fmt.Fprintf(s, "%s ", c)
		if (i+1)%g.n == 0 && i != 0 {
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (g *MNK) BoardSize() (int, int) { return g.m, g.n }
func (g *MNK) Board() []game.Colour  { return g.board }

func (g *MNK) ToMove() game.Player { return g.nextToMove }

func (g *MNK) Opponent(p game.Player) game.Player { return opponent(p) }

func (g *MNK) LastMove() game.PlayerMove {
	if len(g.history) > 0 {
		return g.history[len(g.history)-1]
	}
	return game.PlayerMove{Player: game.Player(game.None), Single: game.Pass}
}

func (g *MNK) MoveNumber() int { return len(g.history) }

// LegalActions returns the empty cells, or nothing at all if the game has been won.
func (g *MNK) LegalActions() []game.Single {
	if g.isWinner(Cross) || g.isWinner(Nought) {
		return nil
	}
	retVal := make([]game.Single, 0, len(g.board))
	for i, c := range g.board {
		if c == game.None {
			retVal = append(retVal, game.Single(i))
		}
	}
	return retVal
}

func (g *MNK) Check(a game.Single) bool {
	if a < 0 || int(a) >= len(g.board) {
		return false
	}
	return g.board[int(a)] == game.None
}

// Apply places a stone of the player to move. Illegal actions are logged and leave the game unchanged.
func (g *MNK) Apply(a game.Single) {
	if !g.Check(a) {
		log.Warn().Str("game", "mnk").Int("move", g.MoveNumber()).Msgf("Illegal move %v by %v ignored", a, g.nextToMove)
		return
	}
	g.board[int(a)] = game.Colour(g.nextToMove)
	g.history = append(g.history, game.PlayerMove{Player: g.nextToMove, Single: a})
	g.nextToMove = opponent(g.nextToMove)
}

func (g *MNK) IsWinner(p game.Player) bool { return g.isWinner(p) }

func (g *MNK) IsTerminal() bool {
	if g.isWinner(Cross) || g.isWinner(Nought) {
		return true
	}
	for _, c := range g.board {
		if c == game.None {
			return false
		}
	}
	return true
}

func (g *MNK) Reset() {
	for i := range g.board {
		g.board[i] = game.None
	}
	g.history = g.history[:0]
	g.nextToMove = Cross
}

func (g *MNK) Clone() game.State {
	retVal := New(g.m, g.n, g.k)
	copy(retVal.board, g.board)
	retVal.history = append(retVal.history, g.history...)
	retVal.nextToMove = g.nextToMove
	return retVal
}

func (g *MNK) isWinner(p game.Player) bool {
	colour := game.Colour(p)
	it := game.MakeIterator(g.board, int32(g.m), int32(g.n))
	defer game.ReturnIterator(int32(g.m), int32(g.n), it)

	// right, down, down-right, down-left
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for i := 0; i < g.m; i++ {
		for j := 0; j < g.n; j++ {
			if it[i][j] != colour {
				continue
			}
			for _, d := range dirs {
				count := 1
				for r, c := i+d[0], j+d[1]; r >= 0 && r < g.m && c >= 0 && c < g.n && it[r][c] == colour; r, c = r+d[0], c+d[1] {
					count++
				}
				if count >= g.k {
					return true
				}
			}
		}
	}
	return false
}

func opponent(p game.Player) game.Player {
	switch p {
	case Cross:
		return Nought
	case Nought:
		return Cross
	}
	panic("Unreachable")
}
