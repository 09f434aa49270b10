package table

import (
	"fmt"
	"strings"
)

// InvalidReferenceError reports a column token that cannot be used as a
// reference: an integer below 1, or an otherwise unusable value.
type InvalidReferenceError struct {
	Arg   string // flag the token was supplied for, e.g. "--from-col"
	Token string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s: column index %q must be 1 or greater (1-indexed)", e.Arg, e.Token)
}

// OutOfBoundsError reports a numeric column position outside the table.
type OutOfBoundsError struct {
	Arg   string
	Index int // 1-based index as given by the user
	Max   int // number of columns in the table
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: column index %d is out of bounds; valid range is 1..%d", e.Arg, e.Index, e.Max)
}

// NoHeaderError reports a name-based reference against a headerless table.
type NoHeaderError struct {
	Arg  string
	Name string
}

func (e *NoHeaderError) Error() string {
	return fmt.Sprintf("%s: cannot use column name %q when the table has no header; use a 1-indexed position", e.Arg, e.Name)
}

// UnknownColumnError reports a header name not present in the table.
type UnknownColumnError struct {
	Arg       string
	Name      string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("%s: column %q not found; available columns: %s",
		e.Arg, e.Name, strings.Join(e.Available, ", "))
}

// EmptyInputError reports that an operation requiring rows received no input.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "input is empty"
}
