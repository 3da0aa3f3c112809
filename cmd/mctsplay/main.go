package main

import (
	"flag"
	"os"
	"time"

	"github.com/gorgonia/mctsplay"
	"github.com/gorgonia/mctsplay/game"
	"github.com/gorgonia/mctsplay/game/c4"
	"github.com/gorgonia/mctsplay/game/mnk"
	"github.com/gorgonia/mctsplay/gtp"
	"github.com/gorgonia/mctsplay/mcts"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

var (
	gameName     = flag.String("game", "tictactoe", "game to play: tictactoe, gomoku or connect4")
	timeout      = flag.Duration("timeout", 3*time.Second, "time to think per move")
	puct         = flag.Float64("puct", 5, "exploration constant")
	budget       = flag.Int("budget", 0, "maximum number of playouts per move. 0 means no limit")
	rolloutLimit = flag.Int("rolloutlimit", 1000, "maximum number of moves in a rollout")
	seed         = flag.Uint64("seed", 0, "seed of the rollouts. 0 seeds from the clock")
	reuse        = flag.Bool("reuse", false, "keep the search tree between moves")
	games        = flag.Int("games", 1, "number of self play games")
	csvFile      = flag.String("csv", "", "write the win rates to this file")
	gtpMode      = flag.Bool("gtp", false, "speak GTP on stdin and stdout instead of playing against itself")
	verbose      = flag.Bool("v", false, "log the search")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	g, newGame, err := makeGame(*gameName)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to make game")
	}

	conf := mctsplay.Config{
		MCTSConf: mcts.Config{
			PUCT:         float32(*puct),
			Timeout:      *timeout,
			RolloutLimit: *rolloutLimit,
			Budget:       int32(*budget),
			Seed:         *seed,
		},
		ReuseTree: *reuse,
	}

	if *gtpMode {
		if err := runGTP(g, newGame, conf); err != nil {
			log.Fatal().Err(err).Msg("GTP session failed")
		}
		return
	}
	if err := selfPlay(g, conf, *games); err != nil {
		log.Fatal().Err(err).Msg("Self play failed")
	}
}

func makeGame(name string) (game.Resetter, func(m, n int) game.State, error) {
	switch name {
	case "tictactoe", "ttt":
		return mnk.TicTacToe(), func(m, n int) game.State { return mnk.New(m, n, 3) }, nil
	case "gomoku":
		return mnk.New(9, 9, 5), func(m, n int) game.State { return mnk.New(m, n, 5) }, nil
	case "connect4", "c4":
		return c4.ConnectFour(), func(m, n int) game.State { return c4.New(m, n, 4) }, nil
	}
	return nil, nil, errors.Errorf("Unknown game %q", name)
}

func runGTP(g game.Resetter, newGame func(m, n int) game.State, conf mctsplay.Config) error {
	conf.Name = "mctsplay"
	agent, err := mctsplay.NewAgent(conf)
	if err != nil {
		return err
	}
	if *verbose {
		agent.SetLogger(log.Logger)
	}
	e := gtp.New(g, "mctsplay", version, nil)
	e.New = newGame
	e.Generate = func(s game.State) (game.Single, bool) {
		agent.SetPlayerInd(s.ToMove())
		return agent.GetAction(s)
	}
	e.Observe = agent.Observe
	e.Reset = agent.Reset
	return e.Run(os.Stdin, os.Stdout)
}

func selfPlay(g game.Resetter, conf mctsplay.Config, games int) error {
	a, b := conf, conf
	a.Name = "A"
	b.Name = "B"
	m, err := mctsplay.New(g, a, b)
	if err != nil {
		return err
	}
	if *verbose {
		m.A.SetLogger(log.Logger)
		m.B.SetLogger(log.Logger)
	}

	out := termenv.NewOutput(os.Stdout)
	for i := 0; i < games; i++ {
		if err := m.Bout(1); err != nil {
			return err
		}
		printGame(out, i, m)
	}
	printSummary(out, m)

	if *csvFile != "" {
		return m.Dump(*csvFile)
	}
	return nil
}
