package mcts

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// lumberjack carries the logger of the search. Traces are logged at debug level, the soft failures of the search at
// warning level.
type lumberjack struct {
	logger zerolog.Logger
}

func makeLumberJack() lumberjack {
	return lumberjack{logger: log.Logger.Level(zerolog.InfoLevel).With().Str("component", "mcts").Logger()}
}

func (l *lumberjack) log(msg string, args ...interface{}) { l.logger.Debug().Msgf(msg, args...) }

func (l *lumberjack) warn(msg string, args ...interface{}) { l.logger.Warn().Msgf(msg, args...) }

// SetLogger replaces the logger. Use a logger at debug level to trace the search.
func (l *lumberjack) SetLogger(logger zerolog.Logger) { l.logger = logger }

func (l *lumberjack) Logger() zerolog.Logger { return l.logger }
