package gtp

import (
	"strconv"

	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
)

// parseColour parses the colour argument of "play" and "genmove".
func parseColour(a string) (game.Player, error) {
	switch a {
	case "b", "black", "x", "cross":
		return game.Player(game.Black), nil
	case "w", "white", "o", "nought":
		return game.Player(game.White), nil
	}
	return game.Player(game.None), errors.Errorf("invalid color %q", a)
}

// parseMove parses a move. Moves are written as the number of the action, or as "pass" or "resign".
func parseMove(a string) (game.Single, error) {
	switch a {
	case "pass":
		return game.Pass, nil
	case "resign":
		return game.Resign, nil
	}
	i, err := strconv.Atoi(a)
	if err != nil || i < 0 {
		return game.Pass, errors.Errorf("invalid move %q", a)
	}
	return game.Single(i), nil
}

func formatMove(m game.Single) string {
	switch {
	case m.IsPass():
		return "pass"
	case m.IsResignation():
		return "resign"
	}
	return strconv.Itoa(int(m))
}

// boardSize returns the size of the board of g, or 0, 0 if the game does not have a board.
func boardSize(g game.State) (m, n int) {
	if b, ok := g.(interface{ BoardSize() (int, int) }); ok {
		return b.BoardSize()
	}
	return 0, 0
}
