// Package day12 solves "Hill Climbing Algorithm".
package day12

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

// ErrUnreachable is returned when no route reaches the goal.
var ErrUnreachable = errors.New("no path to the best signal")

// Map is the heightmap, heights 0 ('a') through 25 ('z').
type Map struct {
	Heights    aoc.Grid[int]
	Start, End aoc.Pt
}

func Parse(input string) (*Map, error) {
	m := new(Map)
	var start, end int
	g, err := aoc.ParseGrid(input, func(p aoc.Pt, r rune) (int, error) {
		switch {
		case r == 'S':
			m.Start = p
			start++
			r = 'a'
		case r == 'E':
			m.End = p
			end++
			r = 'z'
		case !aoc.IsLower(r):
			return 0, fmt.Errorf("invalid height %q", r)
		}
		return int(r - 'a'), nil
	})
	if err != nil {
		return nil, err
	}
	if start != 1 || end != 1 {
		return nil, fmt.Errorf("want exactly one S and one E, got %d and %d", start, end)
	}
	m.Heights = g
	return m, nil
}

// canStep reports whether one may climb from a to the neighbor b.
func (m *Map) canStep(a, b aoc.Pt) bool {
	return m.Heights.At(b) <= m.Heights.At(a)+1
}

func (m *Map) neighbors(p aoc.Pt, f func(aoc.Pt)) {
	p.ForImmediateNeighbors(func(n aoc.Pt) bool {
		if _, ok := m.Heights.AtOk(n); ok {
			f(n)
		}
		return true
	})
}

// ShortestPath returns the points of a shortest route from Start to End,
// both included. It is an A* search ordered by steps taken plus the
// manhattan distance left.
func (m *Map) ShortestPath() ([]aoc.Pt, error) {
	dist := map[aoc.Pt]int{m.Start: 0}
	prev := map[aoc.Pt]aoc.Pt{}
	queued := map[aoc.Pt]*aoc.PQI[aoc.Pt]{}
	pq := aoc.MinQueue[aoc.Pt]()
	pq.Push(&aoc.PQI[aoc.Pt]{V: m.Start, P: m.Start.MDist(m.End)})
	for pq.Len() > 0 {
		cur := pq.Pop().V
		if cur == m.End {
			break
		}
		d := dist[cur] + 1
		m.neighbors(cur, func(n aoc.Pt) {
			if !m.canStep(cur, n) {
				return
			}
			if old, ok := dist[n]; ok && old <= d {
				return
			}
			dist[n] = d
			prev[n] = cur
			p := d + n.MDist(m.End)
			// Lower the priority in place while n is still queued.
			if it, ok := queued[n]; ok && it.Index() >= 0 {
				it.P = p
				pq.Update(it)
				return
			}
			it := &aoc.PQI[aoc.Pt]{V: n, P: p}
			queued[n] = it
			pq.Push(it)
		})
	}
	if _, ok := dist[m.End]; !ok {
		return nil, ErrUnreachable
	}
	path := []aoc.Pt{m.End}
	for p := m.End; p != m.Start; {
		p = prev[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// FewestStepsFromLowest returns the fewest steps from any lowest square to
// End, searching breadth first downhill from End.
func (m *Map) FewestStepsFromLowest() (int, error) {
	steps := map[aoc.Pt]int{m.End: 0}
	q := aoc.NewQueue(m.End)
	best := -1
	q.While(func(cur aoc.Pt) bool {
		if m.Heights.At(cur) == 0 {
			best = steps[cur]
			return false
		}
		m.neighbors(cur, func(n aoc.Pt) {
			if _, seen := steps[n]; seen || !m.canStep(n, cur) {
				return
			}
			steps[n] = steps[cur] + 1
			q.Push(n)
		})
		return true
	})
	if best < 0 {
		return 0, ErrUnreachable
	}
	return best, nil
}

// Render draws path over the map: S and E at its ends, arrows along it and
// dots elsewhere.
func (m *Map) Render(path []aoc.Pt) string {
	size := m.Heights.Size()
	out := aoc.MakeGrid[byte](size.X, size.Y)
	for _, row := range out {
		for x := range row {
			row[x] = '.'
		}
	}
	for i := 0; i+1 < len(path); i++ {
		if d, ok := path[i].DirTo(path[i+1]); ok {
			out.Set(path[i], d.String()[0])
		}
	}
	out.Set(m.Start, 'S')
	out.Set(m.End, 'E')
	var sb strings.Builder
	for _, row := range out {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func Part1(m *Map) (int, error) {
	path, err := m.ShortestPath()
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

func Part2(m *Map) (int, error) {
	return m.FewestStepsFromLowest()
}
