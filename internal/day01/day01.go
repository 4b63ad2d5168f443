// Package day01 solves "Calorie Counting".
package day01

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

// Totals is the calories carried by each elf, in input order.
type Totals []int

// Parse reads blank-line separated groups of calorie counts.
func Parse(input string) (Totals, error) {
	var out Totals
	for i, group := range strings.Split(strings.TrimRight(input, "\n"), "\n\n") {
		total := 0
		for _, line := range strings.Split(group, "\n") {
			v, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("elf %d: failed to parse calories from %q: %w", i, line, err)
			}
			total += v
		}
		out = append(out, total)
	}
	return out, nil
}

// Top returns the sum of the n largest totals.
func (t Totals) Top(n int) int {
	pq := aoc.MaxQueue[int]()
	for _, v := range t {
		pq.Push(&aoc.PQI[int]{V: v, P: v})
	}
	var top []int
	for len(top) < n && pq.Len() > 0 {
		top = append(top, pq.Pop().V)
	}
	return aoc.Sum(top...)
}

func Part1(t Totals) int { return t.Top(1) }

func Part2(t Totals) int { return t.Top(3) }
