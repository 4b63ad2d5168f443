// Package day11 solves "Monkey in the Middle".
package day11

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

// Operation is how a monkey changes the worry level of an item.
type Operation struct {
	Multiply bool
	// Old is set when the right hand side is "old"; Operand is unused then.
	Old     bool
	Operand int
}

func (o Operation) Apply(old int) int {
	v := o.Operand
	if o.Old {
		v = old
	}
	if o.Multiply {
		return old * v
	}
	return old + v
}

type Monkey struct {
	ID        int
	Items     aoc.Queue[int]
	Op        Operation
	Divisor   int
	IfTrue    int
	IfFalse   int
	Inspected int
}

// Target returns the monkey an item of the given worry is thrown to.
func (m *Monkey) Target(worry int) int {
	if worry%m.Divisor == 0 {
		return m.IfTrue
	}
	return m.IfFalse
}

// Troop is the monkeys, indexed by ID.
type Troop []*Monkey

var (
	numberRx    = regexp.MustCompile(`\d+`)
	operationRx = regexp.MustCompile(`new = old ([*+]) (old|\d+)`)
)

func numbers(line string) ([]int, error) {
	n, err := aoc.ParseInts(numberRx.FindAllString(line, -1)...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", strings.TrimSpace(line), err)
	}
	return n, nil
}

func number(line, prefix string) (int, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("expected %q, got %q", prefix, line)
	}
	n, err := numbers(line)
	if err != nil {
		return 0, err
	}
	if len(n) != 1 {
		return 0, fmt.Errorf("expected one number in %q", line)
	}
	return n[0], nil
}

func parseOperation(line string) (Operation, error) {
	m := operationRx.FindStringSubmatch(line)
	if m == nil {
		return Operation{}, fmt.Errorf("could not parse operation %q", line)
	}
	op := Operation{Multiply: m[1] == "*", Old: m[2] == "old"}
	if !op.Old {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			return Operation{}, fmt.Errorf("could not parse operation %q: %w", line, err)
		}
		op.Operand = v
	}
	return op, nil
}

func parseMonkey(block string) (*Monkey, error) {
	lines := strings.Split(block, "\n")
	if len(lines) != 6 {
		return nil, fmt.Errorf("expected 6 lines, got %d", len(lines))
	}
	m := new(Monkey)
	var err error
	if m.ID, err = number(lines[0], "Monkey"); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "Starting items:") {
		return nil, fmt.Errorf("expected starting items, got %q", lines[1])
	}
	start, err := numbers(lines[1])
	if err != nil {
		return nil, err
	}
	m.Items = aoc.NewQueue(start...)
	if m.Op, err = parseOperation(lines[2]); err != nil {
		return nil, err
	}
	if m.Divisor, err = number(lines[3], "Test: divisible by"); err != nil {
		return nil, err
	}
	if m.Divisor == 0 {
		return nil, fmt.Errorf("monkey %d: divisor must not be zero", m.ID)
	}
	if m.IfTrue, err = number(lines[4], "If true: throw to monkey"); err != nil {
		return nil, err
	}
	if m.IfFalse, err = number(lines[5], "If false: throw to monkey"); err != nil {
		return nil, err
	}
	return m, nil
}

func Parse(input string) (Troop, error) {
	var t Troop
	for i, block := range strings.Split(strings.TrimRight(input, "\n"), "\n\n") {
		m, err := parseMonkey(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if m.ID != i {
			return nil, fmt.Errorf("block %d: got monkey %d", i, m.ID)
		}
		t = append(t, m)
	}
	for _, m := range t {
		for _, target := range []int{m.IfTrue, m.IfFalse} {
			if target < 0 || target >= len(t) || target == m.ID {
				return nil, fmt.Errorf("monkey %d: invalid target %d", m.ID, target)
			}
		}
	}
	return t, nil
}

// Clone returns a deep copy, so a troop can be simulated more than once.
func (t Troop) Clone() Troop {
	out := make(Troop, len(t))
	for i, m := range t {
		c := *m
		c.Items = aoc.NewQueue(slices.Clone(m.Items.Slice())...)
		out[i] = &c
	}
	return out
}

// Round plays one round. relief is applied to every worry level after the
// monkey's operation.
func (t Troop) Round(relief func(int) int) {
	for _, m := range t {
		m.Items.While(func(worry int) bool {
			m.Inspected++
			worry = relief(m.Op.Apply(worry))
			t[m.Target(worry)].Items.Push(worry)
			return true
		})
	}
}

// MonkeyBusiness multiplies the two highest inspection counts.
func (t Troop) MonkeyBusiness() int {
	counts := make([]int, len(t))
	for i, m := range t {
		counts[i] = m.Inspected
	}
	slices.Sort(counts)
	slices.Reverse(counts)
	return aoc.Product(counts[:min(2, len(counts))]...)
}

func simulate(t Troop, rounds int, relief func(int) int) int {
	t = t.Clone()
	for i := 0; i < rounds; i++ {
		t.Round(relief)
	}
	return t.MonkeyBusiness()
}

// Part1 plays 20 rounds, dividing worry by three after each inspection.
func Part1(t Troop) int {
	return simulate(t, 20, func(w int) int { return w / 3 })
}

// Part2 plays 10000 rounds without relief. Worry levels are kept modulo
// the product of the test divisors, which preserves every test's result.
func Part2(t Troop) int {
	divisors := make([]int, len(t))
	for i, m := range t {
		divisors[i] = m.Divisor
	}
	mod := aoc.LCM(divisors...)
	return simulate(t, 10000, func(w int) int { return w % mod })
}
