package ops

// Delete drops one or more columns. Duplicate references remove the
// column once; "all" drops every column.
type Delete struct {
	Columns string // -i/--cols-to-delete: comma-separated positions/names, or "all"
}

func (op *Delete) Name() string        { return "delete" }
func (op *Delete) RequiresInput() bool { return true }

func (op *Delete) Apply(ctx *Context) error {
	t := ctx.Table
	positions, err := t.ResolveList(op.Columns, "--cols-to-delete")
	if err != nil {
		return err
	}
	ctx.verbosef("deleting %d column(s)", len(positions))
	t.Delete(positions)
	return nil
}
