package main

import (
	"fmt"

	"github.com/gorgonia/mctsplay"
	"github.com/gorgonia/mctsplay/game"
	"github.com/muesli/termenv"
)

// printGame prints the final position of a game and its winner.
func printGame(out *termenv.Output, i int, m *mctsplay.Match) {
	fmt.Fprintf(out, "Game %d\n%v", i, m.State())

	ended, winner := game.Ended(m.State())
	var result termenv.Style
	switch {
	case !ended:
		result = out.String("Unfinished").Foreground(out.Color("3"))
	case winner == game.Player(game.None):
		result = out.String("Draw").Foreground(out.Color("3"))
	case winner == m.A.Player:
		result = out.String(fmt.Sprintf("%v (%v) wins", m.A, winner)).Foreground(out.Color("2")).Bold()
	default:
		result = out.String(fmt.Sprintf("%v (%v) wins", m.B, winner)).Foreground(out.Color("1")).Bold()
	}
	fmt.Fprintln(out, result)
}

func printSummary(out *termenv.Output, m *mctsplay.Match) {
	for _, a := range []*mctsplay.Agent{m.A, m.B} {
		name := out.String(a.Name()).Bold()
		fmt.Fprintf(out, "%v: %v wins, %v losses, %v draws. Win rate %.3f, mean score %.3f\n",
			name, a.Wins, a.Loss, a.Draw, m.WinRate(a.Name()), m.MeanScore(a.Name()))
	}
}
