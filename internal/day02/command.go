package day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/aoc/internal/domain"
	"github.com/bft-labs/aoc/internal/textio"
)

// Direction is the closed set of submarine movements.
type Direction int

const (
	Forward Direction = iota + 1
	Down
	Up
)

var directionNames = map[string]Direction{
	"forward": Forward,
	"down":    Down,
	"up":      Up,
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Command is a single movement such as "forward 5".
type Command struct {
	Dir    Direction
	Amount int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Dir, c.Amount)
}

var (
	errMissingAmount  = errors.New("expected <direction> <amount>")
	errUnknownDir     = errors.New("unknown direction")
	errNegativeAmount = errors.New("amount must not be negative")
)

// ParseCommand parses "<direction> <amount>".
func ParseCommand(line string) (Command, error) {
	return parseCommand(0, line)
}

func parseCommand(lineNo int, line string) (Command, error) {
	name, raw, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Command{}, domain.NewParseError(lineNo, line, errMissingAmount)
	}
	dir, ok := directionNames[name]
	if !ok {
		return Command{}, domain.NewParseError(lineNo, line, errUnknownDir)
	}
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Command{}, domain.NewParseError(lineNo, line, err)
	}
	if amount < 0 {
		return Command{}, domain.NewParseError(lineNo, line, errNegativeAmount)
	}
	return Command{Dir: dir, Amount: amount}, nil
}

// ParseCommands parses one command per line.
func ParseCommands(input string) ([]Command, error) {
	lines := textio.Lines(input)
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		c, err := parseCommand(i+1, line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}
