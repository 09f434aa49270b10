package ops

import "github.com/kolkov/tm/table"

// Insert adds a constant-valued column at a position. The position may
// be one past the last column, meaning append.
type Insert struct {
	At     string // -i/--col-idx: insertion position or name
	Value  string // -v/--value: cell value, escape-decoded
	Header string // --new-header: name for the new column
}

func (op *Insert) Name() string        { return "insert" }
func (op *Insert) RequiresInput() bool { return true }

func (op *Insert) Apply(ctx *Context) error {
	t := ctx.Table
	pos, err := t.Resolve(op.At, table.RoleInsert, "--col-idx")
	if err != nil {
		return err
	}
	header := op.Header
	if header == "" {
		header = "new_column"
	}
	name := t.InsertConst(pos, header, op.Value)
	ctx.verbosef("inserted column %q at position %d with value %q", name, pos+1, op.Value)
	return nil
}
