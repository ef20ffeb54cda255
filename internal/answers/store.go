// Package answers keeps accepted puzzle answers in a TOML file so later runs
// can detect regressions:
//
//	[day01]
//	one = 1502
//	two = 1538
package answers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/aoc/pkg/puzzle"
)

// DefaultFileName is used when only a directory is known.
const DefaultFileName = "answers.toml"

// ErrRegression is returned when an answer differs from the recorded one.
var ErrRegression = errors.New("answer differs from recorded answer")

// Entry holds both answers of a day.
type Entry struct {
	One int `toml:"one"`
	Two int `toml:"two"`
}

// Answers maps "dayNN" to its recorded answers.
type Answers map[string]Entry

// Record stores the answers for day.
func (a Answers) Record(day, one, two int) {
	a[puzzle.Name(day)] = Entry{One: one, Two: two}
}

// Check compares answers for day against the recorded ones.
// A day with nothing recorded passes.
func (a Answers) Check(day, one, two int) error {
	want, ok := a[puzzle.Name(day)]
	if !ok {
		return nil
	}
	if want.One != one {
		return fmt.Errorf("%s part one: got %d, want %d: %w", puzzle.Name(day), one, want.One, ErrRegression)
	}
	if want.Two != two {
		return fmt.Errorf("%s part two: got %d, want %d: %w", puzzle.Name(day), two, want.Two, ErrRegression)
	}
	return nil
}

// Store reads and writes an answers file.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the answers file. A missing file yields an empty set.
func (s *Store) Load(ctx context.Context) (Answers, error) {
	a := Answers{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return a, nil
}

// Save writes the answers file atomically (temp file, then rename).
func (s *Store) Save(ctx context.Context, a Answers) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(a)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Path returns the answers file path.
func (s *Store) Path() string {
	return s.path
}
