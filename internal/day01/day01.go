// Package day01 counts depth increases in a sonar sweep.
package day01

import (
	_ "embed"

	"github.com/bft-labs/aoc/internal/textio"
	"github.com/bft-labs/aoc/pkg/puzzle"
)

// windowWidth is the sliding-window size used by part two.
const windowWidth = 3

//go:embed testdata/sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Solution{
		Day:    1,
		Title:  "Sonar Sweep",
		One:    PartOne,
		Two:    PartTwo,
		Sample: sample,
		Want:   [2]int{7, 5},
	})
}

// Parse reads one depth per line.
func Parse(input string) ([]int, error) {
	lines := textio.Lines(input)
	depths := make([]int, 0, len(lines))
	for i, line := range lines {
		d, err := textio.Atoi(i+1, line)
		if err != nil {
			return nil, err
		}
		depths = append(depths, d)
	}
	return depths, nil
}

// CountIncreases counts readings that are strictly deeper than the one before.
func CountIncreases(depths []int) int {
	return CountWindowIncreases(depths, 1)
}

// CountWindowIncreases counts how often the sum of a sliding window of width
// readings is strictly larger than the sum of the window before it.
//
// Two consecutive windows share width-1 readings, so comparing their sums
// reduces to comparing the reading that enters with the one that leaves.
func CountWindowIncreases(depths []int, width int) int {
	if width < 1 {
		return 0
	}
	count := 0
	for i := 0; i+width < len(depths); i++ {
		if depths[i+width] > depths[i] {
			count++
		}
	}
	return count
}

// PartOne counts single-reading increases.
func PartOne(input string) (int, error) {
	depths, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountIncreases(depths), nil
}

// PartTwo counts three-reading window increases.
func PartTwo(input string) (int, error) {
	depths, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountWindowIncreases(depths, windowWidth), nil
}
