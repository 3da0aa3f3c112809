package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorgonia/mctsplay/game"
	"github.com/pkg/errors"
)

// Engine is a text protocol engine modelled after the Go Text Protocol. It keeps the game being played and
// answers commands about it.
type Engine struct {
	g game.State

	known map[string]Command

	ch  chan string
	ret chan string

	// Generate picks the move for the player to move. false means there is no move to make.
	Generate func(g game.State) (game.Single, bool)

	// Observe is told of every move played with the "play" command.
	Observe func(move game.Single)

	// New creates a new game with m rows and n columns.
	New func(m, n int) game.State

	// Reset is called whenever the board is replaced or cleared.
	Reset func()

	name, version string
	quitting      bool
}

// New creates an engine playing g. A nil set of known commands means the StandardLib.
func New(g game.State, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:       g,
		known:   known,
		name:    name,
		version: version,
	}
}

// Start starts the engine in a goroutine. Commands are sent on input and responses are received on output.
// output is closed after the engine has answered a "quit".
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Run reads commands from r line by line, and writes the responses to w, until a "quit" or the end of r.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		resp, ok := e.Exec(s.Text())
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, resp); err != nil {
			return errors.Wrap(err, "Unable to write response")
		}
		if e.quitting {
			return nil
		}
	}
	return errors.Wrap(s.Err(), "Unable to read commands")
}

func (e *Engine) State() game.State { return e.g }

// Exec executes a single command and returns the response. false is returned if there is nothing to respond to.
func (e *Engine) Exec(cmd string) (string, bool) {
	id, x, args, err := e.parse(cmd)
	if x == nil && err == nil {
		return "", false
	}
	if err != nil {
		return handleErr(id, err), true
	}
	id, result, err := x.Do(id, args, e)
	return handleResult(id, result, err), true
}

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		resp, ok := e.Exec(cmd)
		if !ok {
			continue
		}
		e.ret <- resp
		if e.quitting {
			return
		}
	}
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo some how does nothing when there are no tokens left. An ID may be passed in but it'll be ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// preprocess removes comments and surrounding whitespace, and lowercases the command.
func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
