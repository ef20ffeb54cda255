// Package domain contains the error vocabulary shared by the puzzle solvers.
//
// Solvers never panic on bad input. Every fatal condition is returned as an
// error that can be checked with errors.Is:
//
//   - [ErrMalformedInput]: a token could not be parsed (non-numeric value,
//     unknown command name, wrong line length). Returned wrapped in a
//     [ParseError] that carries the offending line.
//   - [ErrInvalidState]: the input parsed but violates a structural invariant
//     the puzzle relies on (a tied bit column, a bingo game nobody wins).
package domain
