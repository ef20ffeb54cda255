package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/aoc/internal/answers"
	"github.com/bft-labs/aoc/internal/cliconfig"
	"github.com/bft-labs/aoc/internal/runner"
	"github.com/bft-labs/aoc/internal/watch"
	"github.com/bft-labs/aoc/pkg/log"
	"github.com/bft-labs/aoc/pkg/puzzle"

	_ "github.com/bft-labs/aoc/internal/day01"
	_ "github.com/bft-labs/aoc/internal/day02"
	_ "github.com/bft-labs/aoc/internal/day03"
	_ "github.com/bft-labs/aoc/internal/day04"
)

const longHelp = `Solve Advent of Code 2021 puzzles.

Each day reads <input-dir>/dayNN.txt and prints two answers:

  one = <value>
  two = <value>

With no day arguments every solved day runs. Configure via file
($HOME/.aoc/config.toml), AOC_* environment variables (a .env file in the
working directory is loaded first) or flags; flags win.`

var exampleUsage = strings.TrimSpace(`
  aoc 4
  aoc --sample
  aoc --input-dir ~/aoc/2021 --record
  aoc 3 --verify --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "aoc [day...]",
		Short:         "Solve Advent of Code 2021 puzzles",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliconfig.LoadDotEnv(".env"); err != nil {
				return fmt.Errorf("load .env: %w", err)
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides the file but not explicit flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zl := log.NewConsoleLogger(stderr, cfg.LogLevel)
			zl.Debug().Interface("config", cfg).Msg("configuration")

			days, err := parseDays(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = run(ctx, cfg, days, stdout, zl)
			if err != nil {
				zl.Error().Err(err).Msg("aoc")
			}
			return err
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.aoc/config.toml)")
	root.Flags().StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "directory holding dayNN.txt inputs")
	root.Flags().StringVar(&cfg.AnswersPath, "answers", cfg.AnswersPath, "answers file (default: <input-dir>/answers.toml)")
	root.Flags().BoolVar(&cfg.Sample, "sample", cfg.Sample, "run the bundled samples and check their known answers")
	root.Flags().BoolVar(&cfg.Record, "record", cfg.Record, "record answers into the answers file")
	root.Flags().BoolVar(&cfg.Verify, "verify", cfg.Verify, "fail when answers differ from the recorded ones")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run a day whenever its input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay before re-running after an input change")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := puzzle.ParseDay(a)
		if err != nil {
			return nil, err
		}
		if _, ok := puzzle.Lookup(d); !ok {
			return nil, fmt.Errorf("%s: %w", puzzle.Name(d), runner.ErrUnknownDay)
		}
		days = append(days, d)
	}
	return days, nil
}

func run(ctx context.Context, cfg cliconfig.Config, days []int, stdout io.Writer, zl zerolog.Logger) error {
	logger := log.NewZerologAdapterWithLogger(zl)

	opts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithOutput(stdout),
	}
	if cfg.AnswersPath != "" {
		opts = append(opts, runner.WithStore(answers.NewStore(cfg.AnswersPath)))
	}
	r := runner.New(runner.Config{
		InputDir: cfg.InputDir,
		Sample:   cfg.Sample,
		Record:   cfg.Record,
		Verify:   cfg.Verify,
	}, opts...)

	_, err := r.Run(ctx, days)
	if !cfg.Watch {
		return err
	}
	if err != nil {
		// Keep watching: fixing the input is usually the next step.
		logger.Warn("initial run failed", log.Err(err))
	}

	w, err := watch.New(watch.Config{Dir: cfg.InputDir, Debounce: cfg.Debounce, Days: days},
		func(ctx context.Context, day int) {
			fmt.Fprintf(stdout, "\n%s\n", puzzle.Name(day))
			if _, err := r.RunDay(ctx, day); err != nil {
				logger.Error("re-run failed", log.Day(day), log.Err(err))
			}
		}, logger)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.InputDir, err)
	}
	defer w.Close()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
