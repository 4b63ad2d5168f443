package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "A Y\nB X\nC Z\n"

func TestParts(t *testing.T) {
	rounds, err := Parse(sample)
	require.NoError(t, err)

	got, err := Part1(rounds)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	got, err = Part2(rounds)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestScore(t *testing.T) {
	tests := []struct {
		ours, theirs Shape
		want         int
	}{
		{Rock, Rock, 4},
		{Rock, Paper, 1},
		{Rock, Scissors, 7},
		{Paper, Rock, 8},
		{Paper, Paper, 5},
		{Paper, Scissors, 2},
		{Scissors, Rock, 3},
		{Scissors, Paper, 9},
		{Scissors, Scissors, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.ours, tt.theirs), "Score(%v, %v)", tt.ours, tt.theirs)
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, Paper, Rock.For(Win))
	assert.Equal(t, Scissors, Rock.For(Lose))
	assert.Equal(t, Rock, Rock.For(Draw))
	assert.Equal(t, Rock, Scissors.For(Win))
}

func TestBadInput(t *testing.T) {
	rounds, err := Parse("A Q\n")
	require.NoError(t, err)
	_, err = Part1(rounds)
	assert.Error(t, err)
	_, err = Part2(rounds)
	assert.Error(t, err)

	_, err = Parse("A\n")
	assert.Error(t, err)
}
