package ops

import (
	"fmt"
	"strings"

	"github.com/kolkov/tm/internal/rx"
	"github.com/kolkov/tm/table"
)

// Query keeps rows whose target column matches. Exactly one of Pattern
// (regex search), StartsWith, or EndsWith must be set.
type Query struct {
	Column     string // -i/--col-idx
	Pattern    string // -p/--pattern: regular expression
	StartsWith string // --starts-with: literal prefix
	EndsWith   string // --ends-with: literal suffix
}

func (op *Query) Name() string        { return "query" }
func (op *Query) RequiresInput() bool { return true }

func (op *Query) Apply(ctx *Context) error {
	t := ctx.Table
	pos, err := t.Resolve(op.Column, table.RoleColumn, "--col-idx")
	if err != nil {
		return err
	}

	var match func(string) bool
	switch {
	case op.Pattern != "":
		re, err := rx.Compile(op.Pattern)
		if err != nil {
			return err
		}
		ctx.verbosef("querying column %q with pattern %q", t.Name(pos), op.Pattern)
		match = re.MatchString
	case op.StartsWith != "":
		ctx.verbosef("querying column %q for prefix %q", t.Name(pos), op.StartsWith)
		match = func(s string) bool { return strings.HasPrefix(s, op.StartsWith) }
	case op.EndsWith != "":
		ctx.verbosef("querying column %q for suffix %q", t.Name(pos), op.EndsWith)
		match = func(s string) bool { return strings.HasSuffix(s, op.EndsWith) }
	default:
		return fmt.Errorf("query: one of --pattern, --starts-with, or --ends-with is required")
	}

	cells := t.Cells(pos)
	t.FilterRows(func(row int) bool { return match(cells[row]) })
	return nil
}
