// Package day10 solves "Cathode-Ray Tube".
package day10

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Op is an instruction opcode.
type Op int

const (
	NoOp Op = iota
	Add
)

// Instruction is a single parsed program line. Register and Value are only
// set for Add.
type Instruction struct {
	Op       Op
	Register byte
	Value    int
}

func (in Instruction) String() string {
	if in.Op == NoOp {
		return "noop"
	}
	return fmt.Sprintf("add%c %d", in.Register, in.Value)
}

// cycles returns how many cycles the instruction takes.
func (in Instruction) cycles() int {
	if in.Op == Add {
		return 2
	}
	return 1
}

// ParseInstruction parses "noop" or "add<r> <v>", where <r> is one
// lowercase register letter.
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	switch {
	case len(f) == 1 && f[0] == "noop":
		return Instruction{Op: NoOp}, nil
	case len(f) == 2 && len(f[0]) == 4 && strings.HasPrefix(f[0], "add"):
		r := f[0][3]
		if r < 'a' || r > 'z' {
			return Instruction{}, fmt.Errorf("invalid register %q in instruction: %s", r, line)
		}
		v, err := strconv.Atoi(f[1])
		if err != nil {
			return Instruction{}, fmt.Errorf("invalid value %q in instruction: %s", f[1], line)
		}
		return Instruction{Op: Add, Register: r, Value: v}, nil
	}
	return Instruction{}, fmt.Errorf("invalid instruction: %s", line)
}

func Parse(input string) ([]Instruction, error) {
	var out []Instruction
	for i, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, in)
	}
	return out, nil
}

// CPU is a single-register machine clocked one cycle at a time. The zero
// value is ready to use, with x set to 1.
type CPU struct {
	Cycle     int
	Registers map[byte]int

	// OnCycle, if set, is called during every cycle, before the instruction
	// executing in that cycle has taken effect.
	OnCycle func(cycle, x int)
}

func NewCPU() *CPU {
	c := new(CPU)
	c.init()
	return c
}

func (c *CPU) init() {
	if c.Registers == nil {
		c.Registers = map[byte]int{'x': 1}
	}
}

func (c *CPU) X() int {
	c.init()
	return c.Registers['x']
}

// Run executes the program.
func (c *CPU) Run(program []Instruction) {
	c.init()
	for _, in := range program {
		for i := 0; i < in.cycles(); i++ {
			c.Cycle++
			if c.OnCycle != nil {
				c.OnCycle(c.Cycle, c.X())
			}
		}
		if in.Op == Add {
			c.Registers[in.Register] += in.Value
		}
	}
}

// Checkpoints are the cycles sampled for signal strength.
var Checkpoints = []int{20, 60, 100, 140, 180, 220}

// Part1 sums cycle*X at every checkpoint.
func Part1(program []Instruction) int {
	sum := 0
	cpu := NewCPU()
	cpu.OnCycle = func(cycle, x int) {
		if slices.Contains(Checkpoints, cycle) {
			sum += cycle * x
		}
	}
	cpu.Run(program)
	return sum
}

// ScreenWidth is the number of pixels per CRT row.
const ScreenWidth = 40

// Part2 draws the CRT. A pixel is lit when the 3-pixel sprite centred on
// X covers it.
func Part2(program []Instruction) string {
	var sb strings.Builder
	cpu := NewCPU()
	cpu.OnCycle = func(cycle, x int) {
		col := (cycle - 1) % ScreenWidth
		if col == 0 && cycle > 1 {
			sb.WriteByte('\n')
		}
		if col >= x-1 && col <= x+1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	cpu.Run(program)
	return sb.String()
}
