package ops

import (
	"fmt"
	"strings"

	"github.com/kolkov/tm/table"
)

// Split divides one column by a literal delimiter into as many new
// columns as the widest split produces; shorter rows are padded with
// empty cells. The new columns replace the original at its position.
type Split struct {
	Column       string // -i/--col-idx
	Delimiter    string // -d/--delimiter, escape-decoded
	HeaderPrefix string // --new-header-prefix for the derived column names
}

func (op *Split) Name() string        { return "split" }
func (op *Split) RequiresInput() bool { return true }

func (op *Split) Apply(ctx *Context) error {
	t := ctx.Table
	pos, err := t.Resolve(op.Column, table.RoleColumn, "--col-idx")
	if err != nil {
		return err
	}
	prefix := op.HeaderPrefix
	if prefix == "" {
		prefix = "split_col"
	}

	origName := t.Name(pos)
	parts := make([][]string, t.NumRows())
	width := 0
	for i, cell := range t.Cells(pos) {
		parts[i] = strings.Split(cell, op.Delimiter)
		if len(parts[i]) > width {
			width = len(parts[i])
		}
	}
	ctx.verbosef("splitting column %q by %q into %d column(s)", origName, op.Delimiter, width)

	t.Pop(pos)
	for c := 0; c < width; c++ {
		cells := make([]string, len(parts))
		for r := range parts {
			if c < len(parts[r]) {
				cells[r] = parts[r][c]
			}
		}
		name := fmt.Sprintf("%s_%d", prefix, c+1)
		if t.HasHeader() {
			name = fmt.Sprintf("%s_%s", origName, name)
		}
		t.Insert(pos+c, name, cells)
	}
	return nil
}
