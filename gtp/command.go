package gtp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }
func quit(e *Engine) string            { e.quitting = true; return "" }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)

	var buf bytes.Buffer
	for i, c := range cmds {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(c)
	}
	return buf.String()
}

func showboard(e *Engine) string { return fmt.Sprintf("\n%v", e.g) }

func clearBoard(e *Engine, args []string) (string, error) {
	if g, ok := e.g.(game.Resetter); ok {
		g.Reset()
		e.reset()
		return "", nil
	}
	if e.New == nil {
		return "", errors.Errorf("Unable to clear a board of %T", e.g)
	}
	e.newGame(boardSize(e.g))
	return "", nil
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func setBoardSize(e *Engine, args []string) (string, error) {
	if e.New == nil {
		return "", errors.New("Unable to create new games")
	}
	switch len(args) {
	case 0:
		return "", errors.New("Not enough arguments for \"boardsize\"")
	case 1:
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
		}
		e.newGame(size, size)
		return "", nil
	default:
		newM, err := strconv.Atoi(args[0])
		if err != nil {
			return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
		}
		newN, err := strconv.Atoi(args[1])
		if err != nil {
			return "", errors.WithMessage(err, "Unable to parse second argument of boardsize")
		}
		e.newGame(newM, newN)
		return "", nil
	}
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	if err := e.checkTurn(args[0]); err != nil {
		return "", err
	}
	move, err := parseMove(args[1])
	if err != nil {
		return "", err
	}

	switch {
	case move.IsPass():
		p, ok := e.g.(game.Passer)
		if !ok {
			return "", errors.New("illegal move")
		}
		p.Pass()
	case isLegal(e.g, move):
		e.g.Apply(move)
	default:
		return "", errors.New("illegal move")
	}
	if e.Observe != nil {
		e.Observe(move)
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	if err := e.checkTurn(args[0]); err != nil {
		return "", err
	}

	move, ok := e.Generate(e.g)
	p, canPass := e.g.(game.Passer)
	switch {
	case canPass && (!ok || move.IsPass()):
		p.Pass()
		return formatMove(game.Pass), nil
	case !ok:
		return formatMove(game.Resign), nil
	case !isLegal(e.g, move):
		return "", errors.Errorf("Generated an illegal move %v", move)
	}
	e.g.Apply(move)
	return formatMove(move), nil
}

func (e *Engine) newGame(m, n int) {
	e.g = e.New(m, n)
	e.reset()
}

func (e *Engine) reset() {
	if e.Reset != nil {
		e.Reset()
	}
}

// checkTurn returns an error if the colour is not the colour of the player to move.
func (e *Engine) checkTurn(colour string) error {
	p, err := parseColour(colour)
	if err != nil {
		return err
	}
	if p != e.g.ToMove() {
		return errors.Errorf("It is not %v's turn", p)
	}
	return nil
}

func isLegal(g game.State, move game.Single) bool {
	for _, a := range g.LegalActions() {
		if a == move {
			return true
		}
	}
	return false
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"showboard":        stdlib(showboard),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(setBoardSize),
		"clear_board":   stdlib2(clearBoard),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
	}
}
