package mctsplay

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorgonia/mctsplay/game/mnk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	s := makeStatistics()
	a := &Agent{name: "a"}
	b := &Agent{name: "b"}

	// a wins, draw, b wins, a wins
	results := [][2]string{{"a", "b"}, {"", ""}, {"b", "a"}, {"a", "b"}}
	for _, r := range results {
		switch r[0] {
		case "a":
			a.Wins++
			b.Loss++
		case "b":
			b.Wins++
			a.Loss++
		default:
			a.Draw++
			b.Draw++
		}
		s.update(a)
		s.update(b)
	}

	assert.Equal(t, []string{"a", "b"}, s.Creation)
	assert.Equal(t, []float32{1, 1, 1, 2}, s.Wins["a"])
	assert.Equal(t, []float64{1, 0, -1, 1}, s.Scores["a"])
	assert.Equal(t, []float64{-1, 0, 1, -1}, s.Scores["b"])
	assert.InDelta(t, 0.5, s.WinRate("a"), 1e-6)
	assert.InDelta(t, 0.25, s.WinRate("b"), 1e-6)
	assert.InDelta(t, 0.25, s.MeanScore("a"), 1e-9)
	assert.InDelta(t, -0.25, s.MeanScore("b"), 1e-9)
	assert.Zero(t, s.WinRate("nobody"))
	assert.Zero(t, s.MeanScore("nobody"))

	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf))
	expected := "a,b\n1.000,\n0.500,\n0.333,\n0.500,\n,0.000\n,0.000\n,0.333\n,0.250\n"
	assert.Equal(t, expected, buf.String())

	filename := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, s.Dump(filename))
	written, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, expected, string(written))
}

func TestMatch(t *testing.T) {
	m, err := New(mnk.TicTacToe(), testConf("A", false), testConf("B", true))
	require.NoError(t, err)

	require.NoError(t, m.Bout(3))
	assert.Equal(t, 3, m.GameNumber())
	assert.Equal(t, []string{"A", "B"}, m.Creation)
	assert.Len(t, m.Wins["A"], 3)
	assert.Len(t, m.Scores["B"], 3)
	assert.InDelta(t, -m.MeanScore("A"), m.MeanScore("B"), 1e-9)
	assert.Equal(t, float32(3), m.A.Wins+m.A.Loss+m.A.Draw)

	var buf bytes.Buffer
	m.Log(&buf)
	assert.Contains(t, buf.String(), "Game 2")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(mnk.TicTacToe(), testConf("A", false), testConf("A", false))
	assert.Error(t, err)

	bad := testConf("B", false)
	bad.MCTSConf.Budget = -1
	_, err = New(mnk.TicTacToe(), testConf("A", false), bad)
	assert.Error(t, err)
}
