// Package day08 solves "Treetop Tree House".
package day08

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

// Forest holds tree heights.
type Forest = aoc.Grid[int]

func Parse(input string) (Forest, error) {
	return aoc.ParseGrid(input, func(_ aoc.Pt, r rune) (int, error) {
		h := strings.IndexRune(aoc.ASCIIDigits, r)
		if h < 0 {
			return 0, fmt.Errorf("%q is not a digit", r)
		}
		return h, nil
	})
}

// Visible reports which trees can be seen from outside the forest. Rows are
// scanned from both ends, then columns the same way on the transposed forest.
func Visible(f Forest) aoc.Grid[bool] {
	size := f.Size()
	vis := aoc.MakeGrid[bool](size.X, size.Y)
	for y, row := range f {
		markLine(row, vis[y])
	}
	colVis := aoc.MakeGrid[bool](size.Y, size.X)
	for x, col := range f.Transpose() {
		markLine(col, colVis[x])
	}
	byCol := colVis.Transpose()
	for y := range vis {
		for x := range vis[y] {
			vis[y][x] = vis[y][x] || byCol[y][x]
		}
	}
	return vis
}

// markLine marks the trees of line taller than everything before them,
// looking from either end.
func markLine(line []int, vis []bool) {
	highest := -1
	for i := 0; i < len(line) && highest < 9; i++ {
		if line[i] > highest {
			highest = line[i]
			vis[i] = true
		}
	}
	highest = -1
	for i := len(line) - 1; i >= 0 && highest < 9; i-- {
		if line[i] > highest {
			highest = line[i]
			vis[i] = true
		}
	}
}

// ScenicScore multiplies the viewing distances from p in every direction.
func ScenicScore(f Forest, at aoc.Pt) int {
	height := f.At(at)
	score := 1
	for _, d := range aoc.Directions {
		dist := 0
		for p, ok := f.Move(aoc.Path{Pt: at, Dir: d}); ok; p, ok = f.Move(p) {
			dist++
			if f.At(p.Pt) >= height {
				break
			}
		}
		score *= dist
	}
	return score
}

// Part1 counts the trees visible from outside.
func Part1(f Forest) int {
	n := 0
	for _, row := range Visible(f) {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Part2 returns the highest scenic score.
func Part2(f Forest) int {
	best := 0
	size := f.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			best = max(best, ScenicScore(f, aoc.Pt{X: x, Y: y}))
		}
	}
	return best
}
