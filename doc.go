// Package tm manipulates delimiter-separated tables on the command line.
//
// tm reads a table from standard input or a file, applies exactly one
// operation (move, insert, delete, query, split, merge, translate, sort,
// cleanup, prefix_add, summarize, strip, view, cut, viewheader, groupby,
// transpose, capture), and writes the transformed table back out.
// Columns are referenced by 1-indexed position or, when the table has a
// header row, by exact name.
//
// # Quick Start
//
// One-off execution from Go:
//
//	out, err := tm.Run(&ops.Move{From: "1", To: "3"},
//	    strings.NewReader("a\tb\tc\n1\t2\t3\n"), nil)
//
// With configuration:
//
//	out, err := tm.Run(op, input, &tm.Config{
//	    Sep:      ",",
//	    NoHeader: true,
//	})
//
// # Column References
//
// Where a single column is required, options accept a 1-based position
// or a header name. Where multiple columns are accepted, options take a
// comma-separated list or the keyword "all". References are resolved
// against the table's current columns at the moment of the operation.
//
// # Error Handling
//
// All validation happens before any mutation; a failed invocation
// produces no primary output. Failures carry typed errors from the
// table package (OutOfBoundsError, UnknownColumnError, and friends)
// with messages naming the offending argument.
package tm
