package ops

import "github.com/kolkov/tm/table"

// Move relocates one column. A destination past the last column appends.
type Move struct {
	From string // -i/--from-col: source column position or name
	To   string // -j/--to-col: destination position or name
}

func (op *Move) Name() string        { return "move" }
func (op *Move) RequiresInput() bool { return true }

func (op *Move) Apply(ctx *Context) error {
	t := ctx.Table
	from, err := t.Resolve(op.From, table.RoleColumn, "--from-col")
	if err != nil {
		return err
	}
	to, err := t.Resolve(op.To, table.RoleInsert, "--to-col")
	if err != nil {
		return err
	}
	ctx.verbosef("moving column %q from position %d to position %d", t.Name(from), from+1, to+1)
	t.Move(from, to)
	return nil
}
