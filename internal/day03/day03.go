// Package day03 solves "Rucksack Reorganization".
package day03

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

// Rucksack holds the items of its two compartments.
type Rucksack struct {
	Left, Right string
}

func (r Rucksack) All() string { return r.Left + r.Right }

func Parse(input string) ([]Rucksack, error) {
	var out []Rucksack
	for i, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		if len(line)%2 != 0 {
			return nil, fmt.Errorf("line %d is not even: %s", i, line)
		}
		mid := len(line) / 2
		out = append(out, Rucksack{Left: line[:mid], Right: line[mid:]})
	}
	return out, nil
}

// Priority returns 1-26 for a-z and 27-52 for A-Z.
func Priority(item rune) (int, error) {
	if i := strings.IndexRune(aoc.ASCIILowercase+aoc.ASCIIUppercase, item); i >= 0 {
		return i + 1, nil
	}
	return 0, fmt.Errorf("invalid item %q", item)
}

// common returns the single item present in every one of sets.
func common(sets ...string) (rune, error) {
	seen := make(map[rune]int)
	for i, s := range sets {
		for _, r := range s {
			if seen[r] == i {
				seen[r] = i + 1
			}
		}
	}
	var found []rune
	for r, n := range seen {
		if n == len(sets) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return 0, fmt.Errorf("no common item in %q", sets)
	}
	return 0, fmt.Errorf("more than one common item %q in %q", found, sets)
}

func Part1(sacks []Rucksack) (int, error) {
	total := 0
	for _, s := range sacks {
		item, err := common(s.Left, s.Right)
		if err != nil {
			return 0, err
		}
		p, err := Priority(item)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

func Part2(sacks []Rucksack) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%d is not divisible by 3, cannot proceed", len(sacks))
	}
	total := 0
	for i := 0; i < len(sacks); i += 3 {
		badge, err := common(sacks[i].All(), sacks[i+1].All(), sacks[i+2].All())
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/3, err)
		}
		p, err := Priority(badge)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}
