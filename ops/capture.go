package ops

import (
	"strings"

	"github.com/kolkov/tm/internal/rx"
	"github.com/kolkov/tm/table"
)

// Capture extracts every match of a pattern into a new first column,
// matches joined by ";". The search runs over one column, or over the
// whole row joined by the field separator when no column is given. Rows
// without a match get an empty cell; the source data is left intact.
type Capture struct {
	Pattern string // -p/--pattern: regular expression to extract
	Column  string // -i/--col-idx: optional column to restrict the search to
	Header  string // --new-header for the capture column
}

func (op *Capture) Name() string        { return "capture" }
func (op *Capture) RequiresInput() bool { return true }

func (op *Capture) Apply(ctx *Context) error {
	t := ctx.Table
	re, err := rx.Compile(op.Pattern)
	if err != nil {
		return err
	}

	target := func(row int) string { return strings.Join(t.Row(row), ctx.Sep) }
	if op.Column != "" {
		pos, err := t.Resolve(op.Column, table.RoleColumn, "--col-idx")
		if err != nil {
			return err
		}
		cells := t.Cells(pos)
		target = func(row int) string { return cells[row] }
	}

	rows := t.NumRows()
	captured := make([]string, rows)
	for r := 0; r < rows; r++ {
		captured[r] = strings.Join(re.FindAllString(target(r), -1), ";")
	}

	header := op.Header
	if header == "" {
		header = "captured"
	}
	name := t.Insert(0, header, captured)
	ctx.verbosef("captured matches of %q into column %q", op.Pattern, name)
	return nil
}
