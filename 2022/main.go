// Command 2022 runs the Advent of Code 2022 solutions.
//
// Each D{day}p{part} method is checked against the sample in its doc comment
// before it runs on the real input. The real input is read from the file
// named by $AOC_INPUT, or else fetched and cached under 2022/.
package main

import (
	_ "embed"

	"github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/internal/day01"
	"github.com/maisem/aoc2022/internal/day02"
	"github.com/maisem/aoc2022/internal/day03"
	"github.com/maisem/aoc2022/internal/day04"
	"github.com/maisem/aoc2022/internal/day05"
	"github.com/maisem/aoc2022/internal/day06"
	"github.com/maisem/aoc2022/internal/day08"
	"github.com/maisem/aoc2022/internal/day10"
	"github.com/maisem/aoc2022/internal/day11"
	"github.com/maisem/aoc2022/internal/day12"
	"github.com/maisem/aoc2022/internal/day13"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() any {
	return day01.Part1(aoc.MustGet(day01.Parse(s.Text())))
}

// want=45000
func (s solver) D1p2() any {
	return day01.Part2(aoc.MustGet(day01.Parse(s.Text())))
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() any {
	return aoc.MustGet(day02.Part1(aoc.MustGet(day02.Parse(s.Text()))))
}

// want=12
func (s solver) D2p2() any {
	return aoc.MustGet(day02.Part2(aoc.MustGet(day02.Parse(s.Text()))))
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() any {
	return aoc.MustGet(day03.Part1(aoc.MustGet(day03.Parse(s.Text()))))
}

// want=70
func (s solver) D3p2() any {
	return aoc.MustGet(day03.Part2(aoc.MustGet(day03.Parse(s.Text()))))
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() any {
	return day04.Part1(aoc.MustGet(day04.Parse(s.Text())))
}

// want=4
func (s solver) D4p2() any {
	return day04.Part2(aoc.MustGet(day04.Parse(s.Text())))
}

func (s solver) day5() (day05.Harbor, []day05.Instruction) {
	h, ins, err := day05.Parse(s.Text())
	aoc.MustDo(err)
	s.Debugf("harbor:\n%v", h)
	return h, ins
}

/*
want=CMZ

    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
*/
func (s solver) D5p1() any {
	return aoc.MustGet(day05.Part1(s.day5()))
}

// want=MCD
func (s solver) D5p2() any {
	return aoc.MustGet(day05.Part2(s.day5()))
}

/*
want=7

mjqjpqmgbljsphjztnvjfqwrcgsmlb
*/
func (s solver) D6p1() any {
	return aoc.MustGet(day06.Part1(s.Text()))
}

// want=19
func (s solver) D6p2() any {
	return aoc.MustGet(day06.Part2(s.Text()))
}

/*
want=21

30373
25512
65332
33549
35390
*/
func (s solver) D8p1() any {
	return day08.Part1(aoc.MustGet(day08.Parse(s.Text())))
}

// want=8
func (s solver) D8p2() any {
	return day08.Part2(aoc.MustGet(day08.Parse(s.Text())))
}

/*
want=13140

addx 15
addx -11
addx 6
addx -3
addx 5
addx -1
addx -8
addx 13
addx 4
noop
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx -35
addx 1
addx 24
addx -19
addx 1
addx 16
addx -11
noop
noop
addx 21
addx -15
noop
noop
addx -3
addx 9
addx 1
addx -3
addx 8
addx 1
addx 5
noop
noop
noop
noop
noop
addx -36
noop
addx 1
addx 7
noop
noop
noop
addx 2
addx 6
noop
noop
noop
noop
noop
addx 1
noop
noop
addx 7
addx 1
noop
addx -13
addx 13
addx 7
noop
addx 1
addx -33
noop
noop
noop
addx 2
noop
noop
noop
addx 8
noop
addx -1
addx 2
addx 1
noop
addx 17
addx -9
addx 1
addx 1
addx -3
addx 11
noop
noop
addx 1
noop
addx 1
noop
noop
addx -13
addx -19
addx 1
addx 3
addx 26
addx -30
addx 12
addx -1
addx 3
addx 1
noop
noop
noop
addx -9
addx 18
addx 1
addx 2
noop
noop
addx 9
noop
noop
noop
addx -1
addx 2
addx -37
addx 1
addx 3
noop
addx 15
addx -21
addx 22
addx -6
addx 1
noop
addx 2
addx 1
noop
addx -10
noop
noop
addx 20
addx 1
addx 2
addx 2
addx -6
addx -11
noop
noop
noop
*/
func (s solver) D10p1() any {
	return day10.Part1(aoc.MustGet(day10.Parse(s.Text())))
}

// want=?
func (s solver) D10p2() any {
	return day10.Part2(aoc.MustGet(day10.Parse(s.Text())))
}

/*
want=10605

Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
*/
func (s solver) D11p1() any {
	return day11.Part1(aoc.MustGet(day11.Parse(s.Text())))
}

// want=2713310158
func (s solver) D11p2() any {
	return day11.Part2(aoc.MustGet(day11.Parse(s.Text())))
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	m := aoc.MustGet(day12.Parse(s.Text()))
	path := aoc.MustGet(m.ShortestPath())
	s.Debugf("path:\n%s", m.Render(path))
	return len(path) - 1
}

// want=29
func (s solver) D12p2() any {
	return aoc.MustGet(day12.Part2(aoc.MustGet(day12.Parse(s.Text()))))
}

/*
want=13

[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
*/
func (s solver) D13p1() any {
	return day13.Part1(aoc.MustGet(day13.Parse(s.Text())))
}

// want=140
func (s solver) D13p2() any {
	return day13.Part2(aoc.MustGet(day13.Parse(s.Text())))
}
