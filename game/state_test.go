package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// line is a game played on a line of cells. The first player to own two adjacent cells wins.
type line struct {
	cells  []Colour
	toMove Player
}

func (l *line) LegalActions() []Single {
	if l.IsTerminal() {
		return nil
	}
	var retVal []Single
	for i, c := range l.cells {
		if c == None {
			retVal = append(retVal, Single(i))
		}
	}
	return retVal
}

func (l *line) Apply(a Single) {
	l.cells[a] = Colour(l.toMove)
	l.toMove = l.Opponent(l.toMove)
}

func (l *line) IsTerminal() bool {
	if l.IsWinner(Player(Black)) || l.IsWinner(Player(White)) {
		return true
	}
	for _, c := range l.cells {
		if c == None {
			return false
		}
	}
	return true
}

func (l *line) IsWinner(p Player) bool {
	for i := 1; i < len(l.cells); i++ {
		if l.cells[i] == Colour(p) && l.cells[i-1] == Colour(p) {
			return true
		}
	}
	return false
}

func (l *line) Clone() State {
	return &line{cells: append([]Colour(nil), l.cells...), toMove: l.toMove}
}

func (l *line) ToMove() Player { return l.toMove }

func (l *line) Opponent(p Player) Player {
	if p == Player(Black) {
		return Player(White)
	}
	return Player(Black)
}

func TestEnded(t *testing.T) {
	l := &line{cells: make([]Colour, 4), toMove: Player(Black)}
	ended, winner := Ended(l)
	assert.False(t, ended)
	assert.Equal(t, Player(None), winner)

	l.Apply(0) // B
	l.Apply(3) // W
	l.Apply(1) // B wins
	ended, winner = Ended(l)
	assert.True(t, ended)
	assert.Equal(t, Player(Black), winner)
	assert.Equal(t, Player(Black), Winner(l), "the winner does not depend on who is to move")

	l = &line{cells: []Colour{Black, White, Black, White}, toMove: Player(Black)}
	ended, winner = Ended(l)
	assert.True(t, ended)
	assert.Equal(t, Player(None), winner)
}

func TestSingle(t *testing.T) {
	assert.True(t, Pass.IsPass())
	assert.False(t, Pass.IsResignation())
	assert.True(t, Resign.IsResignation())
	assert.False(t, Single(0).IsPass())
}

func TestColour_Format(t *testing.T) {
	assert.Equal(t, "Black", fmt.Sprintf("%v", Black))
	assert.Equal(t, "O", fmt.Sprintf("%s", White))
	assert.Equal(t, "·", fmt.Sprintf("%s", None))
	assert.Equal(t, "White", fmt.Sprintf("%v", Player(White)))
	assert.Equal(t, "Black@4", fmt.Sprintf("%v", PlayerMove{Player(Black), 4}))
}

func TestMakeIterator(t *testing.T) {
	board := []Colour{
		Black, None, None, White,
		None, Black, White, None,
	}
	it := MakeIterator(board, 2, 4)
	assert.Len(t, it, 2)
	assert.Equal(t, []Colour{Black, None, None, White}, it[0])
	assert.Equal(t, []Colour{None, Black, White, None}, it[1])

	// rows share the board
	it[1][0] = White
	assert.Equal(t, White, board[4])
	ReturnIterator(2, 4, it)

	it = MakeIterator(board, 4, 2)
	assert.Len(t, it, 4)
	assert.Equal(t, []Colour{White, Black}, it[2])
	ReturnIterator(4, 2, it)
}
