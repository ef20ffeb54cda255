package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/aoc/internal/domain"
)

func sampleRows(t *testing.T) []string {
	t.Helper()
	rows, err := ParseReport(sample)
	require.NoError(t, err)
	require.Len(t, rows, 12)
	return rows
}

func TestPartOne(t *testing.T) {
	got, err := PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 198, got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 230, got)
}

func TestRating(t *testing.T) {
	rows := sampleRows(t)

	o2, err := Rating(rows, MostCommon)
	require.NoError(t, err)
	assert.Equal(t, 23, o2)

	co2, err := Rating(rows, LeastCommon)
	require.NoError(t, err)
	assert.Equal(t, 10, co2)

	// Rating works on its own copy.
	assert.Equal(t, sampleRows(t), rows)
}

func TestTally(t *testing.T) {
	counts := Tally(sampleRows(t))
	require.Len(t, counts, 5)
	assert.Equal(t, BitCount{Zeros: 5, Ones: 7}, counts[0])
	assert.Equal(t, BitCount{Zeros: 7, Ones: 5}, counts[1])
	assert.Nil(t, Tally(nil))
}

func TestTally_SingleRowHasNoTies(t *testing.T) {
	for _, row := range sampleRows(t) {
		for i, c := range Tally([]string{row}) {
			_, ok := c.Majority()
			assert.True(t, ok, "row %s column %d tied", row, i)
			assert.Equal(t, 1, c.Zeros+c.Ones)
		}
	}
}

func TestBitCount(t *testing.T) {
	tests := []struct {
		name    string
		count   BitCount
		major   byte
		minor   byte
		decided bool
	}{
		{name: "ones win", count: BitCount{Zeros: 1, Ones: 2}, major: '1', minor: '0', decided: true},
		{name: "zeros win", count: BitCount{Zeros: 3, Ones: 0}, major: '0', minor: '1', decided: true},
		{name: "tie", count: BitCount{Zeros: 2, Ones: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, ok := tt.count.Majority()
			assert.Equal(t, tt.decided, ok)
			assert.Equal(t, tt.major, major)

			minor, ok := tt.count.Minority()
			assert.Equal(t, tt.decided, ok)
			assert.Equal(t, tt.minor, minor)
		})
	}
}

func TestPowerConsumption_Tie(t *testing.T) {
	_, err := PowerConsumption([]string{"10", "01"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = PowerConsumption(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRating_TieBreaks(t *testing.T) {
	rows := []string{"10", "01"}

	o2, err := Rating(rows, MostCommon)
	require.NoError(t, err)
	assert.Equal(t, 0b10, o2)

	co2, err := Rating(rows, LeastCommon)
	require.NoError(t, err)
	assert.Equal(t, 0b01, co2)
}

func TestRating_InvalidState(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		crit Criterion
	}{
		{name: "duplicate rows", rows: []string{"11", "11"}, crit: MostCommon},
		{name: "minority absent", rows: []string{"10", "11"}, crit: LeastCommon},
		{name: "empty", rows: nil, crit: MostCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rating(tt.rows, tt.crit)
			assert.ErrorIs(t, err, domain.ErrInvalidState)
		})
	}
}

func TestParseReport_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{name: "short row", input: "0101\n011\n", line: 2},
		{name: "bad char", input: "0101\n01x1\n", line: 2},
		{name: "blank row", input: "01\n\n10\n", line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReport(tt.input)
			var perr *domain.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}
