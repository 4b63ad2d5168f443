package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestParts(t *testing.T) {
	sacks, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, sacks, 6)
	assert.Equal(t, Rucksack{Left: "vJrwpWtwJgWr", Right: "hcsFMMfFFhFp"}, sacks[0])

	got, err := Part1(sacks)
	require.NoError(t, err)
	assert.Equal(t, 157, got)

	got, err = Part2(sacks)
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestPriority(t *testing.T) {
	for r, want := range map[rune]int{'a': 1, 'p': 16, 'z': 26, 'A': 27, 'L': 38, 'Z': 52} {
		got, err := Priority(r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Priority(%q)", r)
	}
	_, err := Priority('1')
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, err := Parse("abc\n")
	assert.Error(t, err, "odd length")

	sacks, err := Parse("abab\n")
	require.NoError(t, err)
	_, err = Part1(sacks)
	assert.ErrorContains(t, err, "more than one")

	sacks, err = Parse("abcd\n")
	require.NoError(t, err)
	_, err = Part1(sacks)
	assert.ErrorContains(t, err, "no common item")
	_, err = Part2(sacks)
	assert.ErrorContains(t, err, "divisible by 3")
}
