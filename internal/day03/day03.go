// Package day03 decodes the submarine's binary diagnostic report.
package day03

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/bft-labs/aoc/internal/domain"
	"github.com/bft-labs/aoc/internal/textio"
	"github.com/bft-labs/aoc/pkg/puzzle"
)

// maxWidth keeps a row within an int.
const maxWidth = 62

//go:embed testdata/sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Solution{
		Day:    3,
		Title:  "Binary Diagnostic",
		One:    PartOne,
		Two:    PartTwo,
		Sample: sample,
		Want:   [2]int{198, 230},
	})
}

var (
	errWidth = errors.New("row length differs from first row")
	errBit   = errors.New("expected only '0' and '1'")
	errWide  = fmt.Errorf("row wider than %d bits", maxWidth)
)

// ParseReport reads equal-length rows of '0' and '1'.
func ParseReport(input string) ([]string, error) {
	rows := textio.Lines(input)
	for i, row := range rows {
		switch {
		case len(row) != len(rows[0]):
			return nil, domain.NewParseError(i+1, row, errWidth)
		case len(row) > maxWidth:
			return nil, domain.NewParseError(i+1, row, errWide)
		}
		for j := 0; j < len(row); j++ {
			if row[j] != '0' && row[j] != '1' {
				return nil, domain.NewParseError(i+1, row, errBit)
			}
		}
	}
	return rows, nil
}

// BitCount is the number of zeros and ones seen in one column.
type BitCount struct {
	Zeros int
	Ones  int
}

// Majority returns the more common bit. ok is false on a tie.
func (c BitCount) Majority() (bit byte, ok bool) {
	switch {
	case c.Ones > c.Zeros:
		return '1', true
	case c.Zeros > c.Ones:
		return '0', true
	default:
		return 0, false
	}
}

// Minority returns the less common bit. ok is false on a tie.
func (c BitCount) Minority() (bit byte, ok bool) {
	b, ok := c.Majority()
	if !ok {
		return 0, false
	}
	return flip(b), true
}

func flip(b byte) byte {
	if b == '1' {
		return '0'
	}
	return '1'
}

// Tally counts zeros and ones per column. Index 0 is the leftmost, most
// significant column. Rows are assumed validated by ParseReport.
func Tally(rows []string) []BitCount {
	if len(rows) == 0 {
		return nil
	}
	counts := make([]BitCount, len(rows[0]))
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if row[i] == '1' {
				counts[i].Ones++
			} else {
				counts[i].Zeros++
			}
		}
	}
	return counts
}

// PowerConsumption multiplies the gamma rate (majority bits) by the epsilon
// rate (minority bits). A tied column has no majority and is an error.
func PowerConsumption(rows []string) (int, error) {
	counts := Tally(rows)
	if len(counts) == 0 {
		return 0, fmt.Errorf("%w: empty report", domain.ErrInvalidState)
	}
	gamma, epsilon := 0, 0
	for i, c := range counts {
		gamma <<= 1
		epsilon <<= 1
		b, ok := c.Majority()
		if !ok {
			return 0, fmt.Errorf("%w: column %d is tied", domain.ErrInvalidState, i)
		}
		if b == '1' {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon, nil
}

// Criterion selects which bit a rating keeps at each column.
type Criterion int

const (
	// MostCommon keeps the majority bit, '1' on a tie (oxygen generator).
	MostCommon Criterion = iota
	// LeastCommon keeps the minority bit, '0' on a tie (CO2 scrubber).
	LeastCommon
)

func (c Criterion) String() string {
	if c == MostCommon {
		return "most common"
	}
	return "least common"
}

func (c Criterion) target(count BitCount) byte {
	if c == MostCommon {
		if b, ok := count.Majority(); ok {
			return b
		}
		return '1'
	}
	if b, ok := count.Minority(); ok {
		return b
	}
	return '0'
}

// Rating filters rows column by column, recounting bits over the remaining
// rows each time, until a single row is left, and returns it as a number.
func Rating(rows []string, crit Criterion) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: empty report", domain.ErrInvalidState)
	}
	keep := append([]string(nil), rows...)
	for col := 0; len(keep) > 1; col++ {
		if col >= len(keep[0]) {
			return 0, fmt.Errorf("%w: %s rating left %d rows after the last column",
				domain.ErrInvalidState, crit, len(keep))
		}
		want := crit.target(Tally(keep)[col])
		next := keep[:0]
		for _, row := range keep {
			if row[col] == want {
				next = append(next, row)
			}
		}
		if len(next) == 0 {
			return 0, fmt.Errorf("%w: %s rating filtered every row at column %d",
				domain.ErrInvalidState, crit, col)
		}
		keep = next
	}
	v, err := strconv.ParseInt(keep[0], 2, 64)
	if err != nil {
		return 0, domain.NewParseError(0, keep[0], err)
	}
	return int(v), nil
}

// LifeSupport multiplies the oxygen generator and CO2 scrubber ratings.
func LifeSupport(rows []string) (int, error) {
	o2, err := Rating(rows, MostCommon)
	if err != nil {
		return 0, err
	}
	co2, err := Rating(rows, LeastCommon)
	if err != nil {
		return 0, err
	}
	return o2 * co2, nil
}

// PartOne returns the power consumption.
func PartOne(input string) (int, error) {
	rows, err := ParseReport(input)
	if err != nil {
		return 0, err
	}
	return PowerConsumption(rows)
}

// PartTwo returns the life support rating.
func PartTwo(input string) (int, error) {
	rows, err := ParseReport(input)
	if err != nil {
		return 0, err
	}
	return LifeSupport(rows)
}
