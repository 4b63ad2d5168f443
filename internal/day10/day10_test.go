package day10

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Instruction
		wantErr bool
	}{
		{name: "noop", input: "noop", want: Instruction{Op: NoOp}},
		{name: "valid positive add", input: "adda 1", want: Instruction{Op: Add, Register: 'a', Value: 1}},
		{name: "valid negative add", input: "addb -1", want: Instruction{Op: Add, Register: 'b', Value: -1}},
		{name: "valid zero add", input: "addc 0", want: Instruction{Op: Add, Register: 'c', Value: 0}},
		{name: "missing register", input: "add 1", wantErr: true},
		{name: "long register", input: "addxy 1", wantErr: true},
		{name: "bad value", input: "addx one", wantErr: true},
		{name: "unknown op", input: "mulx 2", wantErr: true},
		{name: "noop with operand", input: "noop 1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstruction(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestRun(t *testing.T) {
	program, err := Parse("noop\naddx 3\naddx -5\n")
	require.NoError(t, err)

	var during []int
	cpu := NewCPU()
	cpu.OnCycle = func(cycle, x int) {
		during = append(during, x)
	}
	cpu.Run(program)

	if diff := cmp.Diff([]int{1, 1, 1, 4, 4}, during); diff != "" {
		t.Errorf("X during cycles mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, cpu.Cycle)
	assert.Equal(t, -1, cpu.X())
}

func TestPart1(t *testing.T) {
	noops := strings.Repeat("noop\n", 220)
	program, err := Parse(noops)
	require.NoError(t, err)
	assert.Equal(t, 720, Part1(program))

	program, err = Parse("addx 5\n" + noops)
	require.NoError(t, err)
	assert.Equal(t, 6*720, Part1(program))

	program, err = Parse("noop\naddx 3\naddx -5\n")
	require.NoError(t, err)
	assert.Equal(t, 0, Part1(program))
}

func TestPart2(t *testing.T) {
	program, err := Parse(strings.Repeat("noop\n", 80))
	require.NoError(t, err)
	row := "###" + strings.Repeat(".", 37)
	assert.Equal(t, row+"\n"+row, Part2(program))

	// Moving the sprite right by two every two cycles keeps it under the beam.
	program, err = Parse(strings.Repeat("addx 2\n", 20))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("#", 40), Part2(program))
}

func TestLargerProgram(t *testing.T) {
	b, err := os.ReadFile("testdata/larger.txt")
	require.NoError(t, err)
	program, err := Parse(string(b))
	require.NoError(t, err)
	require.Len(t, program, 146)

	assert.Equal(t, 13140, Part1(program))

	want := strings.Join([]string{
		"##..##..##..##..##..##..##..##..##..##..",
		"###...###...###...###...###...###...###.",
		"####....####....####....####....####....",
		"#####.....#####.....#####.....#####.....",
		"######......######......######......####",
		"#######.......#######.......#######.....",
	}, "\n")
	if diff := cmp.Diff(want, Part2(program)); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroCPU(t *testing.T) {
	var c CPU
	assert.Equal(t, 1, c.X())

	program, err := Parse("addx 3\naddx -5\n")
	require.NoError(t, err)
	var xs []int
	c.OnCycle = func(_, x int) { xs = append(xs, x) }
	require.NotPanics(t, func() { c.Run(program) })
	assert.Equal(t, []int{1, 1, 4, 4}, xs)
	assert.Equal(t, -1, c.X())
	assert.Equal(t, 4, c.Cycle)
}
