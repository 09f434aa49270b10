package ops

import (
	"github.com/kolkov/tm/internal/rx"
	"github.com/kolkov/tm/table"
)

// Strip removes every match of a pattern from one column's cells, in
// place or into a new column right after the original.
type Strip struct {
	Column  string // -i/--col-idx
	Pattern string // -p/--pattern: regular expression to remove
	Header  string // --new-header: leading "_" appends to the source name
	InPlace bool   // --in-place
}

func (op *Strip) Name() string        { return "strip" }
func (op *Strip) RequiresInput() bool { return true }

func (op *Strip) Apply(ctx *Context) error {
	t := ctx.Table
	pos, err := t.Resolve(op.Column, table.RoleColumn, "--col-idx")
	if err != nil {
		return err
	}
	re, err := rx.Compile(op.Pattern)
	if err != nil {
		return err
	}

	cells := t.Cells(pos)
	stripped := make([]string, len(cells))
	for i, s := range cells {
		stripped[i] = re.RemoveAll(s)
	}

	if op.InPlace {
		ctx.verbosef("stripping %q from column %q in place", op.Pattern, t.Name(pos))
		t.Replace(pos, stripped)
		return nil
	}
	header := op.Header
	if header == "" {
		header = "_stripped"
	}
	name := t.Insert(pos+1, t.DeriveName(pos, header), stripped)
	ctx.verbosef("stripped column inserted as %q after %q", name, t.Name(pos))
	return nil
}
