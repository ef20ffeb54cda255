// Package textio holds the small line and number helpers the day parsers share.
package textio

import (
	"strconv"
	"strings"

	"github.com/bft-labs/aoc/internal/domain"
)

// Lines splits input into lines. Leading and trailing whitespace of the whole
// input is dropped, so a trailing newline does not produce an empty line.
// Carriage returns are stripped. Empty input yields no lines.
func Lines(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// Atoi parses a decimal integer token found on the given 1-based line.
func Atoi(line int, tok string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, domain.NewParseError(line, tok, err)
	}
	return n, nil
}

// Ints parses every separator-delimited token of s as an integer. An empty
// sep splits on runs of whitespace.
func Ints(line int, s, sep string) ([]int, error) {
	var toks []string
	if sep == "" {
		toks = strings.Fields(s)
	} else {
		toks = strings.Split(s, sep)
	}
	out := make([]int, 0, len(toks))
	for _, tok := range toks {
		n, err := Atoi(line, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
