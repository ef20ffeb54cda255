// Package day02 pilots the submarine from a list of movement commands.
package day02

import (
	_ "embed"

	"github.com/bft-labs/aoc/pkg/puzzle"
)

//go:embed testdata/sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Solution{
		Day:    2,
		Title:  "Dive!",
		One:    PartOne,
		Two:    PartTwo,
		Sample: sample,
		Want:   [2]int{150, 900},
	})
}

// Position is the submarine's state. The zero value is the origin.
type Position struct {
	Horizontal int
	Depth      int
	Aim        int
}

// Apply moves the submarine directly: down and up change depth.
func (p *Position) Apply(c Command) {
	switch c.Dir {
	case Forward:
		p.Horizontal += c.Amount
	case Down:
		p.Depth += c.Amount
	case Up:
		p.Depth -= c.Amount
	}
}

// ApplyAimed moves the submarine using aim: down and up turn the aim, and
// forward dives by aim times the amount.
func (p *Position) ApplyAimed(c Command) {
	switch c.Dir {
	case Forward:
		p.Horizontal += c.Amount
		p.Depth += p.Aim * c.Amount
	case Down:
		p.Aim += c.Amount
	case Up:
		p.Aim -= c.Amount
	}
}

// Product returns horizontal position times depth.
func (p Position) Product() int {
	return p.Horizontal * p.Depth
}

func navigate(input string, apply func(*Position, Command)) (int, error) {
	cmds, err := ParseCommands(input)
	if err != nil {
		return 0, err
	}
	var pos Position
	for _, c := range cmds {
		apply(&pos, c)
	}
	return pos.Product(), nil
}

// PartOne applies commands directly.
func PartOne(input string) (int, error) {
	return navigate(input, (*Position).Apply)
}

// PartTwo applies commands with aim.
func PartTwo(input string) (int, error) {
	return navigate(input, (*Position).ApplyAimed)
}
