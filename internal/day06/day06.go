// Package day06 solves "Tuning Trouble".
package day06

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

// Marker lengths.
const (
	PacketStart  = 4
	MessageStart = 14
)

// window tracks the last n runes of a stream and how often each occurs.
type window struct {
	n      int
	q      aoc.Queue[rune]
	counts map[rune]int
	dups   int // runes currently present more than once
}

func newWindow(n int) *window {
	return &window{n: n, counts: make(map[rune]int)}
}

func (w *window) push(r rune) {
	w.q.Push(r)
	if w.counts[r]++; w.counts[r] == 2 {
		w.dups++
	}
	if w.q.Len() > w.n {
		old, _ := w.q.Pop()
		if w.counts[old]--; w.counts[old] == 1 {
			w.dups--
		}
	}
}

func (w *window) distinct() bool {
	return w.q.Len() == w.n && w.dups == 0
}

// FindMarker returns the number of characters processed once the last n
// characters were all different.
func FindMarker(stream string, n int) (int, error) {
	w := newWindow(n)
	for i, r := range []rune(strings.TrimSpace(stream)) {
		w.push(r)
		if w.distinct() {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no marker of length %d found", n)
}

func Part1(stream string) (int, error) { return FindMarker(stream, PacketStart) }

func Part2(stream string) (int, error) { return FindMarker(stream, MessageStart) }
