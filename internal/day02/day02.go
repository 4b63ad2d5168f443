// Package day02 solves "Rock Paper Scissors".
package day02

import (
	"fmt"
	"strings"
)

// Shape is a hand shape. Its value is the shape's score.
type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

// Outcome is a round result for us. Its value is the outcome's score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// beats maps a shape to the shape it defeats.
var beats = map[Shape]Shape{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

func (s Shape) Against(other Shape) Outcome {
	switch {
	case s == other:
		return Draw
	case beats[s] == other:
		return Win
	}
	return Lose
}

// For returns the shape to play against s to get outcome o.
func (s Shape) For(o Outcome) Shape {
	for _, our := range []Shape{Rock, Paper, Scissors} {
		if our.Against(s) == o {
			return our
		}
	}
	panic("unreachable")
}

// Score returns our score for playing ours against theirs.
func Score(ours, theirs Shape) int {
	return int(ours) + int(ours.Against(theirs))
}

func parseShape(s string) (Shape, error) {
	switch s {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("could not parse play %q", s)
}

func parseOutcome(s string) (Outcome, error) {
	switch s {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("could not parse plan %q", s)
}

// Round is one line of the strategy guide.
type Round struct {
	Theirs string
	Second string
}

func Parse(input string) ([]Round, error) {
	var out []Round
	for i, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: malformed round %q", i, line)
		}
		out = append(out, Round{Theirs: f[0], Second: f[1]})
	}
	return out, nil
}

// Part1 scores the guide reading the second column as our shape.
func Part1(rounds []Round) (int, error) {
	total := 0
	for _, r := range rounds {
		theirs, err := parseShape(r.Theirs)
		if err != nil {
			return 0, err
		}
		ours, err := parseShape(r.Second)
		if err != nil {
			return 0, err
		}
		total += Score(ours, theirs)
	}
	return total, nil
}

// Part2 scores the guide reading the second column as the desired outcome.
func Part2(rounds []Round) (int, error) {
	total := 0
	for _, r := range rounds {
		theirs, err := parseShape(r.Theirs)
		if err != nil {
			return 0, err
		}
		o, err := parseOutcome(r.Second)
		if err != nil {
			return 0, err
		}
		total += Score(theirs.For(o), theirs)
	}
	return total, nil
}
