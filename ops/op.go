// Package ops implements the table operations behind the tm
// sub-commands. Each operation owns its option struct and applies one
// bounded transformation to the table held by a Context. Terminal
// operations (view, viewheader, summarize) write their report directly
// and mark the context done, which suppresses table serialization.
package ops

import (
	"fmt"
	"io"

	"github.com/kolkov/tm/table"
)

// Operation is one entry of the fixed operation menu.
type Operation interface {
	// Name is the sub-command name, e.g. "move".
	Name() string
	// RequiresInput reports whether the operation needs input columns.
	// Operations that can report on an empty table return false.
	RequiresInput() bool
	// Apply transforms ctx.Table, or writes a report and marks ctx done.
	// Any resolution or validation failure aborts before mutation.
	Apply(ctx *Context) error
}

// Context carries one invocation's table and streams through an
// operation.
type Context struct {
	// Table is the parsed input table. Operations that derive a new
	// table (groupby, transpose) replace it.
	Table *table.Table
	// Out is the primary output stream.
	Out io.Writer
	// Diag receives warnings, verbose messages, and summary reports.
	Diag io.Writer
	// Sep is the decoded field separator, shared with dictionary files
	// and whole-row matching.
	Sep string
	// Verbose enables diagnostic messages on Diag.
	Verbose bool

	done bool
}

// Done reports whether a terminal operation already wrote its output.
func (c *Context) Done() bool { return c.done }

// finish marks the invocation complete; the table is not re-serialized.
func (c *Context) finish() { c.done = true }

func (c *Context) verbosef(format string, args ...interface{}) {
	if c.Verbose && c.Diag != nil {
		fmt.Fprintf(c.Diag, "VERBOSE: "+format+"\n", args...)
	}
}

func (c *Context) warnf(format string, args ...interface{}) {
	if c.Diag != nil {
		fmt.Fprintf(c.Diag, "Warning: "+format+"\n", args...)
	}
}
