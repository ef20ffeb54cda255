// Package log provides the logging abstraction used by the runner and the
// input watcher.
//
// Solvers never log; only the code around them does. The runner takes a
// [Logger] so tests can pass [NewNoopLogger] and the CLI can pass the zerolog
// adapter:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
package log
