// Package day05 solves "Supply Stacks".
package day05

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

// Harbor is the crate stacks, bottom crate first.
type Harbor []*aoc.Stack[rune]

// Instruction moves Quantity crates between 0-based stacks.
type Instruction struct {
	Quantity int
	From, To int
}

func (h Harbor) Clone() Harbor {
	out := make(Harbor, len(h))
	for i, s := range h {
		out[i] = s.Clone()
	}
	return out
}

// Tops returns the top crate of each stack. Empty stacks are skipped.
func (h Harbor) Tops() string {
	var sb strings.Builder
	for _, s := range h {
		if c, ok := s.Peek(); ok {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func (h Harbor) String() string {
	var sb strings.Builder
	for i, s := range h {
		crates, _ := s.Clone().PopN(s.Len())
		fmt.Fprintf(&sb, "%d: %s\n", i+1, string(crates))
	}
	return sb.String()
}

// Move applies in. With keepOrder the crates are lifted together, otherwise
// they are moved one at a time and end up reversed.
func (h Harbor) Move(in Instruction, keepOrder bool) error {
	if in.From < 0 || in.From >= len(h) || in.To < 0 || in.To >= len(h) {
		return fmt.Errorf("move %+v: no such stack", in)
	}
	lifted, ok := h[in.From].PopN(in.Quantity)
	if !ok {
		return fmt.Errorf("move %+v: stack %d has %d crates", in, in.From+1, h[in.From].Len())
	}
	if !keepOrder {
		for i, j := 0, len(lifted)-1; i < j; i, j = i+1, j-1 {
			lifted[i], lifted[j] = lifted[j], lifted[i]
		}
	}
	h[in.To].PushN(lifted...)
	return nil
}

var instructionRx = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

func Parse(input string) (Harbor, []Instruction, error) {
	drawing, moves, ok := strings.Cut(strings.TrimRight(input, "\n"), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("could not parse input: invalid sections")
	}
	h, err := parseHarbor(drawing)
	if err != nil {
		return nil, nil, err
	}
	var ins []Instruction
	for _, line := range strings.Split(moves, "\n") {
		m := instructionRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, nil, fmt.Errorf("could not parse instruction from line %q", line)
		}
		n, err := aoc.ParseInts(m[1:]...)
		if err != nil {
			return nil, nil, fmt.Errorf("instruction %q: %w", line, err)
		}
		ins = append(ins, Instruction{Quantity: n[0], From: n[1] - 1, To: n[2] - 1})
	}
	return h, ins, nil
}

func parseHarbor(drawing string) (Harbor, error) {
	lines := strings.Split(drawing, "\n")
	ids := strings.Fields(lines[len(lines)-1])
	if len(ids) == 0 {
		return nil, fmt.Errorf("missing stack numbers")
	}
	size, err := strconv.Atoi(ids[len(ids)-1])
	if err != nil {
		return nil, fmt.Errorf("bad stack number %q: %w", ids[len(ids)-1], err)
	}
	h := make(Harbor, size)
	for i := range h {
		h[i] = new(aoc.Stack[rune])
	}
	for y := len(lines) - 2; y >= 0; y-- {
		line := []rune(lines[y])
		if len(line) > size*4-1 {
			return nil, fmt.Errorf("could not parse line %q: expected at most %d chars, found %d", lines[y], size*4-1, len(line))
		}
		for i := range h {
			pos := i*4 + 1
			if pos >= len(line) {
				break
			}
			switch c := line[pos]; {
			case aoc.IsUpper(c):
				h[i].Push(c)
			case c != ' ':
				return nil, fmt.Errorf("could not parse line %q: invalid contents %q at position %d", lines[y], c, pos)
			}
		}
	}
	return h, nil
}

func rearrange(h Harbor, ins []Instruction, keepOrder bool) (string, error) {
	h = h.Clone()
	for _, in := range ins {
		if err := h.Move(in, keepOrder); err != nil {
			return "", err
		}
	}
	return h.Tops(), nil
}

// Part1 moves crates one at a time.
func Part1(h Harbor, ins []Instruction) (string, error) {
	return rearrange(h, ins, false)
}

// Part2 moves crates in blocks, keeping their order.
func Part2(h Harbor, ins []Instruction) (string, error) {
	return rearrange(h, ins, true)
}
