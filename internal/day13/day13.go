// Package day13 solves "Distress Signal".
package day13

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

// Packet is either an integer or a list of packets.
type Packet struct {
	IsList bool
	Num    int
	List   []Packet
}

func Num(n int) Packet { return Packet{Num: n} }

func List(items ...Packet) Packet { return Packet{IsList: true, List: items} }

func (p Packet) String() string {
	if !p.IsList {
		return strconv.Itoa(p.Num)
	}
	parts := make([]string, len(p.List))
	for i, c := range p.List {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Compare orders packets: integers by value, lists element by element and
// then by length. An integer compared with a list is treated as a list
// holding just that integer.
func Compare(a, b Packet) int {
	switch {
	case !a.IsList && !b.IsList:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
		return 0
	case !a.IsList:
		return Compare(List(a), b)
	case !b.IsList:
		return Compare(a, List(b))
	}
	for i := 0; i < len(a.List) && i < len(b.List); i++ {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.List) < len(b.List):
		return -1
	case len(a.List) > len(b.List):
		return 1
	}
	return 0
}

var errEmpty = errors.New("empty line")

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("at %d in %q: %s", p.pos, p.s, fmt.Sprintf(format, args...))
}

func (p *parser) list() (Packet, error) {
	p.pos++ // '['
	out := Packet{IsList: true, List: []Packet{}}
	if p.pos < len(p.s) && p.s[p.pos] == ']' {
		p.pos++
		return out, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return Packet{}, err
		}
		out.List = append(out.List, v)
		if p.pos >= len(p.s) {
			return Packet{}, p.errorf("unterminated list")
		}
		switch c := p.s[p.pos]; c {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return out, nil
		default:
			return Packet{}, p.errorf("unexpected character %q", c)
		}
	}
}

func (p *parser) value() (Packet, error) {
	if p.pos >= len(p.s) {
		return Packet{}, p.errorf("unexpected end of packet")
	}
	if p.s[p.pos] == '[' {
		return p.list()
	}
	start := p.pos
	for p.pos < len(p.s) && aoc.IsDigit(rune(p.s[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		return Packet{}, p.errorf("unexpected character %q", p.s[p.pos])
	}
	n, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		return Packet{}, p.errorf("%v", err)
	}
	return Num(n), nil
}

// ParsePacket reads one packet, which must be a list.
func ParsePacket(line string) (Packet, error) {
	if line == "" {
		return Packet{}, errEmpty
	}
	p := &parser{s: line}
	if line[0] != '[' {
		return Packet{}, p.errorf("expected a list")
	}
	v, err := p.list()
	if err != nil {
		return Packet{}, err
	}
	if p.pos != len(line) {
		return Packet{}, p.errorf("trailing data")
	}
	return v, nil
}

// Pair is two packets to compare.
type Pair [2]Packet

// Parse reads packet pairs. Each pair is two lines, and pairs are separated
// by a blank line.
func Parse(input string) ([]Pair, error) {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if input == "" {
		return nil, errEmpty
	}
	var out []Pair
	for i, block := range strings.Split(input, "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) != 2 {
			return nil, fmt.Errorf("pair %d: expected 2 packets, got %d lines", i+1, len(lines))
		}
		var p Pair
		for j, line := range lines {
			pk, err := ParsePacket(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("pair %d packet %d: %w", i+1, j+1, err)
			}
			p[j] = pk
		}
		out = append(out, p)
	}
	return out, nil
}

// Part1 sums the 1-based indices of the pairs already in the right order.
func Part1(pairs []Pair) int {
	sum := 0
	for i, p := range pairs {
		if Compare(p[0], p[1]) < 0 {
			sum += i + 1
		}
	}
	return sum
}

// Dividers are the extra packets added before sorting.
var Dividers = []Packet{
	List(List(Num(2))),
	List(List(Num(6))),
}

// Part2 sorts all packets with the dividers and multiplies the dividers'
// 1-based positions.
func Part2(pairs []Pair) int {
	type entry struct {
		Packet
		divider bool
	}
	var all []entry
	for _, d := range Dividers {
		all = append(all, entry{d, true})
	}
	for _, p := range pairs {
		all = append(all, entry{Packet: p[0]}, entry{Packet: p[1]})
	}
	slices.SortStableFunc(all, func(a, b entry) int {
		return Compare(a.Packet, b.Packet)
	})
	key := 1
	for i, e := range all {
		if e.divider {
			key *= i + 1
		}
	}
	return key
}
