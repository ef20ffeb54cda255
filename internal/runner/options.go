package runner

import (
	"io"
	"os"

	"github.com/bft-labs/aoc/internal/answers"
	"github.com/bft-labs/aoc/pkg/log"
	"github.com/bft-labs/aoc/pkg/puzzle"
)

// Option configures optional behavior of a Runner.
type Option func(*options)

type options struct {
	logger    log.Logger
	store     *answers.Store
	out       io.Writer
	solutions []puzzle.Solution
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		out:    os.Stdout,
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore sets the answers store used to record and verify answers.
func WithStore(store *answers.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithOutput sets where answers are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithSolutions replaces the global puzzle registry with an explicit list.
func WithSolutions(solutions ...puzzle.Solution) Option {
	return func(o *options) {
		o.solutions = solutions
	}
}
