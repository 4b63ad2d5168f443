// Package day04 solves "Camp Cleanup".
package day04

import (
	"fmt"
	"strconv"
	"strings"
)

// Sections is an inclusive range of section IDs.
type Sections struct {
	Start, End int
}

func (a Sections) Contains(b Sections) bool {
	return a.Start <= b.Start && a.End >= b.End
}

func (a Sections) Overlaps(b Sections) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Pair is the assignment of two elves.
type Pair [2]Sections

func parseSections(s string) (Sections, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Sections{}, fmt.Errorf("could not parse ID %q", s)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return Sections{}, fmt.Errorf("could not parse ID %q: %w", s, err)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return Sections{}, fmt.Errorf("could not parse ID %q: %w", s, err)
	}
	return Sections{start, end}, nil
}

func Parse(input string) ([]Pair, error) {
	var out []Pair
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		a, b, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("could not parse line %q", line)
		}
		var p Pair
		var err error
		if p[0], err = parseSections(a); err != nil {
			return nil, err
		}
		if p[1], err = parseSections(b); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func count(pairs []Pair, f func(p Pair) bool) int {
	n := 0
	for _, p := range pairs {
		if f(p) {
			n++
		}
	}
	return n
}

// Part1 counts pairs where one range fully contains the other.
func Part1(pairs []Pair) int {
	return count(pairs, func(p Pair) bool {
		return p[0].Contains(p[1]) || p[1].Contains(p[0])
	})
}

// Part2 counts pairs that overlap at all.
func Part2(pairs []Pair) int {
	return count(pairs, func(p Pair) bool {
		return p[0].Overlaps(p[1])
	})
}
