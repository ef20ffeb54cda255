// Package puzzle is the registry that ties daily solvers to the runner.
//
// Each day package registers a [Solution] from its init function:
//
//	func init() {
//	    puzzle.Register(puzzle.Solution{
//	        Day:    1,
//	        Title:  "Sonar Sweep",
//	        One:    PartOne,
//	        Two:    PartTwo,
//	        Sample: sample,
//	        Want:   [2]int{7, 5},
//	    })
//	}
//
// Binaries blank-import the day packages they want to expose, the same way
// database/sql drivers are wired in.
package puzzle
