package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Part solves one half of a day's puzzle.
type Part func(input string) (int, error)

// Solution describes a registered day.
type Solution struct {
	Day   int
	Title string
	One   Part
	Two   Part

	// Sample is the worked example from the puzzle text.
	Sample string
	// Want holds the known answers for Sample.
	Want [2]int
}

// Name returns the canonical name of the day, e.g. "day04".
func (s Solution) Name() string {
	return Name(s.Day)
}

// Name formats a day number as "dayNN".
func Name(day int) string {
	return fmt.Sprintf("day%02d", day)
}

var (
	mu        sync.RWMutex
	solutions = map[int]Solution{}
)

// Register adds a solution to the registry.
// It panics if the day is out of range, a part is missing, or the day is
// already registered.
func Register(s Solution) {
	if s.Day < 1 || s.Day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", s.Day))
	}
	if s.One == nil || s.Two == nil {
		panic(fmt.Sprintf("puzzle: %s is missing a part", s.Name()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := solutions[s.Day]; dup {
		panic(fmt.Sprintf("puzzle: %s registered twice", s.Name()))
	}
	solutions[s.Day] = s
}

// Lookup returns the solution registered for day.
func Lookup(day int) (Solution, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := solutions[day]
	return s, ok
}

// All returns every registered solution ordered by day.
func All() []Solution {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Solution, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// ParseDay accepts "4", "04", "day4" or "day04".
func ParseDay(s string) (int, error) {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	d, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	if d < 1 || d > 25 {
		return 0, fmt.Errorf("day %d out of range", d)
	}
	return d, nil
}
