// Package runner executes registered puzzle solutions and reports their answers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bft-labs/aoc/internal/answers"
	"github.com/bft-labs/aoc/pkg/log"
	"github.com/bft-labs/aoc/pkg/puzzle"
)

var (
	// ErrUnknownDay is returned for a day with no registered solution.
	ErrUnknownDay = errors.New("no solution registered for day")

	// ErrMissingInput is returned when a day's input file does not exist.
	ErrMissingInput = errors.New("puzzle input not found")

	// ErrSampleMismatch is returned when a solution gets its sample wrong.
	ErrSampleMismatch = errors.New("sample answer mismatch")
)

// Config controls where input comes from and what is checked.
type Config struct {
	InputDir string
	Sample   bool
	Record   bool
	Verify   bool
}

// Result holds the answers of one day.
type Result struct {
	Day     int
	One     int
	Two     int
	Elapsed time.Duration
}

// Runner runs puzzle solutions.
type Runner struct {
	cfg  Config
	opts options
}

// New creates a Runner.
func New(cfg Config, opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{cfg: cfg, opts: o}
}

// InputPath returns the input file for day inside dir, e.g. dir/day04.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, puzzle.Name(day)+".txt")
}

// Days returns the days the runner knows about, in order.
func (r *Runner) Days() []int {
	sols := r.solutions()
	days := make([]int, len(sols))
	for i, s := range sols {
		days[i] = s.Day
	}
	return days
}

func (r *Runner) solutions() []puzzle.Solution {
	if r.opts.solutions == nil {
		return puzzle.All()
	}
	sols := append([]puzzle.Solution(nil), r.opts.solutions...)
	sort.Slice(sols, func(i, j int) bool { return sols[i].Day < sols[j].Day })
	return sols
}

func (r *Runner) lookup(day int) (puzzle.Solution, error) {
	for _, s := range r.solutions() {
		if s.Day == day {
			return s, nil
		}
	}
	return puzzle.Solution{}, fmt.Errorf("%s: %w", puzzle.Name(day), ErrUnknownDay)
}

// Run solves each day in turn; no days means every known day. A failing day
// does not stop the others. The returned error joins every failure.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	if len(days) == 0 {
		days = r.Days()
	}

	known, err := r.loadAnswers(ctx)
	if err != nil {
		return nil, err
	}

	var (
		results []Result
		errs    []error
	)
	for i, day := range days {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if len(days) > 1 {
			if i > 0 {
				fmt.Fprintln(r.opts.out)
			}
			fmt.Fprintf(r.opts.out, "%s\n", r.header(day))
		}

		res, err := r.solve(ctx, day, known)
		if err != nil {
			r.opts.logger.Error("day failed", log.Day(day), log.Err(err))
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}

	if r.cfg.Record && len(results) > 0 {
		if err := r.opts.store.Save(ctx, known); err != nil {
			errs = append(errs, fmt.Errorf("save answers: %w", err))
		} else {
			r.opts.logger.Info("answers recorded", log.String("path", r.opts.store.Path()), log.Int("days", len(results)))
		}
	}

	return results, errors.Join(errs...)
}

// RunDay solves a single day, recording or verifying its answers when
// configured to.
func (r *Runner) RunDay(ctx context.Context, day int) (Result, error) {
	results, err := r.Run(ctx, []int{day})
	if len(results) == 0 {
		return Result{}, err
	}
	return results[0], err
}

func (r *Runner) header(day int) string {
	s, err := r.lookup(day)
	if err != nil || s.Title == "" {
		return puzzle.Name(day)
	}
	return fmt.Sprintf("%s: %s", s.Name(), s.Title)
}

func (r *Runner) loadAnswers(ctx context.Context) (answers.Answers, error) {
	if !r.cfg.Record && !r.cfg.Verify {
		return nil, nil
	}
	if r.opts.store == nil {
		return nil, errors.New("an answers store is required to record or verify")
	}
	known, err := r.opts.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return known, nil
}

func (r *Runner) input(s puzzle.Solution) (string, error) {
	if r.cfg.Sample {
		return s.Sample, nil
	}
	path := InputPath(r.cfg.InputDir, s.Day)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w: %s", s.Name(), ErrMissingInput, path)
		}
		return "", fmt.Errorf("%s: read input: %w", s.Name(), err)
	}
	return string(b), nil
}

func (r *Runner) solve(ctx context.Context, day int, known answers.Answers) (Result, error) {
	s, err := r.lookup(day)
	if err != nil {
		return Result{}, err
	}
	input, err := r.input(s)
	if err != nil {
		return Result{}, err
	}

	res := Result{Day: day}
	start := time.Now()

	res.One, err = r.part(s, "one", s.One, input)
	if err != nil {
		return Result{}, err
	}
	res.Two, err = r.part(s, "two", s.Two, input)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = time.Since(start)

	r.opts.logger.Debug("solved",
		log.Day(day),
		log.Bool("sample", r.cfg.Sample),
		log.Duration("elapsed", res.Elapsed),
	)

	if r.cfg.Sample {
		if got, want := [2]int{res.One, res.Two}, s.Want; got != want {
			return res, fmt.Errorf("%s: %w: got %v, want %v", s.Name(), ErrSampleMismatch, got, want)
		}
	}
	if r.cfg.Verify {
		if err := known.Check(day, res.One, res.Two); err != nil {
			return res, err
		}
	}
	if r.cfg.Record {
		known.Record(day, res.One, res.Two)
	}
	return res, nil
}

func (r *Runner) part(s puzzle.Solution, name string, p puzzle.Part, input string) (int, error) {
	start := time.Now()
	v, err := p(input)
	if err != nil {
		return 0, fmt.Errorf("%s part %s: %w", s.Name(), name, err)
	}
	fmt.Fprintf(r.opts.out, "%s = %d\n", name, v)
	r.opts.logger.Debug("part solved",
		log.Day(s.Day),
		log.String("part", name),
		log.Duration("elapsed", time.Since(start)),
	)
	return v, nil
}
