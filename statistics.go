package mctsplay

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Statistics records, game after game, the running tallies of each agent.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32

	// Scores are the outcomes of the individual games: 1 for a win, 0 for a draw and -1 for a loss.
	Scores map[string][]float64
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 64),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
		Scores:   make(map[string][]float64),
	}
}

func (s *Statistics) update(A *Agent) {
	aname := A.Name()

	var prevWins, prevLosses float32
	if _, ok := s.Wins[aname]; !ok {
		s.Creation = append(s.Creation, aname)
	} else {
		prevWins = last(s.Wins[aname])
		prevLosses = last(s.Losses[aname])
	}

	var score float64
	switch {
	case A.Wins > prevWins:
		score = 1
	case A.Loss > prevLosses:
		score = -1
	}

	s.Wins[aname] = append(s.Wins[aname], A.Wins)
	s.Losses[aname] = append(s.Losses[aname], A.Loss)
	s.Draws[aname] = append(s.Draws[aname], A.Draw)
	s.Scores[aname] = append(s.Scores[aname], score)
}

// WinRate returns the share of games won by the agent. Draws count as games not won.
func (s *Statistics) WinRate(name string) float64 {
	wins := s.Wins[name]
	if len(wins) == 0 {
		return 0
	}
	i := len(wins) - 1
	total := wins[i] + s.Losses[name][i] + s.Draws[name][i]
	if total == 0 {
		return 0
	}
	return float64(wins[i] / total)
}

// MeanScore returns the mean outcome of the games played by the agent, between -1 and 1.
func (s *Statistics) MeanScore(name string) float64 {
	scores := s.Scores[name]
	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(scores, nil)
}

// Dump writes the win rates of every agent after every game as a CSV file.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return s.WriteCSV(f)
}

// WriteCSV writes the win rates as CSV. The header lists the agents, and every agent has its own column.
func (s *Statistics) WriteCSV(wr io.Writer) error {
	w := csv.NewWriter(wr)
	if err := w.Write(s.Creation); err != nil {
		return errors.Wrap(err, "Unable to write header")
	}
	var records [][]string
	for i, agent := range s.Creation {
		for j, win := range s.Wins[agent] {
			record := make([]string, len(s.Creation))
			winRate := win / (win + s.Losses[agent][j] + s.Draws[agent][j])

			record[i] = strconv.FormatFloat(float64(winRate), 'f', 3, 32)
			records = append(records, record)
		}
	}
	if err := w.WriteAll(records); err != nil {
		return errors.Wrap(err, "Unable to write records")
	}
	return nil
}

func last(a []float32) float32 { return a[len(a)-1] }
