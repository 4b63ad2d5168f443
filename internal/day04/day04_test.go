package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestParts(t *testing.T) {
	pairs, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, pairs, 6)
	assert.Equal(t, Pair{{2, 8}, {3, 7}}, pairs[3])

	assert.Equal(t, 2, Part1(pairs))
	assert.Equal(t, 4, Part2(pairs))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b     Sections
		contains bool
		overlaps bool
	}{
		{Sections{2, 4}, Sections{6, 8}, false, false},
		{Sections{5, 7}, Sections{7, 9}, false, true},
		{Sections{2, 8}, Sections{3, 7}, true, true},
		{Sections{3, 3}, Sections{3, 3}, true, true},
		{Sections{4, 6}, Sections{6, 6}, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.contains, tt.a.Contains(tt.b), "%v contains %v", tt.a, tt.b)
		assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b), "%v overlaps %v", tt.a, tt.b)
		assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a), "%v overlaps %v", tt.b, tt.a)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"2-4", "2-4,6", "a-4,6-8", "2-4,6-x"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
