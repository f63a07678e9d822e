package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "Identical", a: "deadlift", b: "deadlift", want: 0},
		{name: "BothEmpty", a: "", b: "", want: 0},
		{name: "LeftEmpty", a: "", b: "row", want: 3},
		{name: "RightEmpty", a: "squat", b: "", want: 5},
		{name: "SingleSubstitution", a: "squat", b: "squot", want: 1},
		{name: "SingleInsertion", a: "benchpress", b: "bench press", want: 1},
		{name: "Transposed", a: "lunge", b: "lugne", want: 2},
		// The length gap exceeds half the longer string, so the cheap
		// lower bound max(len) is returned without the matrix.
		{name: "LengthGapEarlyExit", a: "row", b: "rowrowrowrow", want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 1.0, similarity("squat", "squat"))
	assert.Equal(t, 0.0, similarity("", "squat"))
	assert.InDelta(t, 0.8, similarity("squat", "squot"), 1e-9)
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"bench press", "panca piana"},
		{"squat", "squats"},
		{"deadlift", ""},
		{"rowing", "rematore"},
	}

	for _, p := range pairs {
		assert.Equal(t, similarity(p[0], p[1]), similarity(p[1], p[0]), "pair %q %q", p[0], p[1])
	}
}
