package ops

// Sort orders rows by one or more key columns. Comparison is plain
// string comparison; the sort is stable, so repeated invocations are
// deterministic.
type Sort struct {
	By         string // -i/--by: comma-separated key columns
	Descending bool   // --desc
}

func (op *Sort) Name() string        { return "sort" }
func (op *Sort) RequiresInput() bool { return true }

func (op *Sort) Apply(ctx *Context) error {
	t := ctx.Table
	keys, err := t.ResolveList(op.By, "--by")
	if err != nil {
		return err
	}
	order := "ascending"
	if op.Descending {
		order = "descending"
	}
	ctx.verbosef("sorting by %d key column(s), %s", len(keys), order)
	t.SortBy(keys, op.Descending)
	return nil
}
