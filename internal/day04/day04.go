// Package day04 plays bingo against a giant squid.
package day04

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/bft-labs/aoc/internal/domain"
	"github.com/bft-labs/aoc/internal/textio"
	"github.com/bft-labs/aoc/pkg/puzzle"
)

//go:embed testdata/sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Solution{
		Day:    4,
		Title:  "Giant Squid",
		One:    PartOne,
		Two:    PartTwo,
		Sample: sample,
		Want:   [2]int{4512, 1924},
	})
}

var (
	errNoBoards    = errors.New("no boards")
	errBoardHeight = fmt.Errorf("board must have %d rows", Size)
	errBoardWidth  = fmt.Errorf("board row must have %d numbers", Size)
	errSeparator   = errors.New("expected a blank line before each board")
)

// Game holds the draw order and the boards in play.
type Game struct {
	Draws  []int
	Boards []Board
}

// Parse reads the draw line followed by blank-line separated boards.
func Parse(input string) (*Game, error) {
	lines := textio.Lines(input)
	if len(lines) == 0 {
		return nil, domain.NewParseError(0, "", errNoBoards)
	}
	draws, err := textio.Ints(1, lines[0], ",")
	if err != nil {
		return nil, err
	}

	g := &Game{Draws: draws}
	for i := 1; i < len(lines); {
		if lines[i] != "" {
			return nil, domain.NewParseError(i+1, lines[i], errSeparator)
		}
		// Tolerate runs of blank lines between boards.
		for i < len(lines) && lines[i] == "" {
			i++
		}
		if len(lines)-i < Size {
			return nil, domain.NewParseError(i+1, "", errBoardHeight)
		}

		var values [Size * Size]int
		for r := 0; r < Size; r, i = r+1, i+1 {
			if lines[i] == "" {
				return nil, domain.NewParseError(i+1, lines[i], errBoardHeight)
			}
			row, err := textio.Ints(i+1, lines[i], "")
			if err != nil {
				return nil, err
			}
			if len(row) != Size {
				return nil, domain.NewParseError(i+1, lines[i], errBoardWidth)
			}
			copy(values[r*Size:], row)
		}
		g.Boards = append(g.Boards, NewBoard(values))
	}
	if len(g.Boards) == 0 {
		return nil, domain.NewParseError(0, lines[0], errNoBoards)
	}
	return g, nil
}

// FirstWin draws numbers until a board wins and returns its score.
// Boards are checked in input order within each draw.
func (g *Game) FirstWin() (int, error) {
	for _, n := range g.Draws {
		for i := range g.Boards {
			if g.Boards[i].Play(n) {
				return g.Boards[i].Score(n), nil
			}
		}
	}
	return 0, domain.ErrNoWinner
}

// LastWin keeps drawing until every board has won or the draws run out and
// returns the score of the last board to win.
func (g *Game) LastWin() (int, error) {
	score, found := 0, false
	remaining := 0
	for i := range g.Boards {
		if !g.Boards[i].Won() {
			remaining++
		}
	}
	for _, n := range g.Draws {
		if remaining == 0 {
			break
		}
		for i := range g.Boards {
			if g.Boards[i].Play(n) {
				score, found = g.Boards[i].Score(n), true
				remaining--
			}
		}
	}
	if !found {
		return 0, domain.ErrNoWinner
	}
	return score, nil
}

// PartOne scores the first winning board.
func PartOne(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return g.FirstWin()
}

// PartTwo scores the last winning board.
func PartTwo(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return g.LastWin()
}
