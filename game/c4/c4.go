package c4

import (
	"fmt"

	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

type Board struct {
	data *tensor.Dense
	it   [][]game.Colour
	n    int // how many to be considered a win?
}

func newBoard(rows, cols, n int) *Board {
	backing := make([]game.Colour, rows*cols)
	data := tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(backing))
	iter, err := native.Matrix(data)
	if err != nil {
		panic(err)
	}
	it := iter.([][]game.Colour)
	return &Board{
		data: data,
		it:   it,
		n:    n,
	}
}

func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range b.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (b *Board) raw() []game.Colour { return b.data.Data().([]game.Colour) }

func (b *Board) rows() int { return b.data.Shape()[0] }

func (b *Board) cols() int { return b.data.Shape()[1] }

// Apply drops a piece of the player into the column given by the move.
func (b *Board) Apply(m game.PlayerMove) error {
	if m.Single.IsPass() {
		return nil
	}
	row, col, err := b.check(m)
	if err != nil {
		return err
	}
	b.it[row][col] = game.Colour(m.Player)
	return nil
}

func (b *Board) check(m game.PlayerMove) (row, col int, err error) {
	if m.Single.IsPass() {
		return -1, -1, nil
	}
	col = int(m.Single)
	if col < 0 || col >= b.cols() {
		return -1, -1, errors.Errorf("Column %d is not on the board", col)
	}
	for row = len(b.it) - 1; row >= 0; row-- {
		if b.it[row][col] == game.None {
			return row, col, nil
		}
	}
	return -1, -1, errors.Errorf("Column %d is full", col)
}

func (b *Board) clone() *Board {
	b2 := newBoard(b.rows(), b.cols(), b.n)
	copy(b2.raw(), b.raw())
	return b2
}

func (b *Board) full() bool {
	for _, c := range b.it[0] {
		if c == game.None {
			return false
		}
	}
	return true
}

func (b *Board) checkWin() game.Colour {
	rows, cols := b.rows(), b.cols()
	if winner := b.checkVertical(rows, cols); winner != game.None {
		return winner
	}
	if winner := b.checkHorizontal(rows, cols); winner != game.None {
		return winner
	}
	if winner := b.checkTLBR(rows, cols); winner != game.None {
		return winner
	}
	return b.checkTRBL(rows, cols)
}

// checkVertical checks downwards
func (b *Board) checkVertical(rows, cols int) game.Colour {
	return b.checkLine(rows, cols, 1, 0)
}

// checkHorizontal checks rightwards
func (b *Board) checkHorizontal(rows, cols int) game.Colour {
	return b.checkLine(rows, cols, 0, 1)
}

// checkTLBR checks downwards to the left
func (b *Board) checkTLBR(rows, cols int) game.Colour {
	return b.checkLine(rows, cols, 1, -1)
}

// checkTRBL checks downwards to the right
func (b *Board) checkTRBL(rows, cols int) game.Colour {
	return b.checkLine(rows, cols, 1, 1)
}

func (b *Board) checkLine(rows, cols, dy, dx int) game.Colour {
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			c := b.it[y][x]
			if c == game.None {
				continue
			}
			winning := true
			for i := 0; i < b.n; i++ {
				yy, xx := y+i*dy, x+i*dx
				if yy < 0 || yy >= rows || xx < 0 || xx >= cols || b.it[yy][xx] != c {
					winning = false
					break
				}
			}
			if winning {
				return c
			}
		}
	}
	return game.None
}
