package ops

// Prefix prepends a string, followed by a delimiter, to every cell of
// the selected columns.
type Prefix struct {
	Columns   string // -i/--cols-to-prefix: comma-separated positions/names, or "all"
	Str       string // -v/--string, escape-decoded
	Delimiter string // -d/--delimiter between prefix and value, escape-decoded
}

func (op *Prefix) Name() string        { return "prefix_add" }
func (op *Prefix) RequiresInput() bool { return true }

func (op *Prefix) Apply(ctx *Context) error {
	t := ctx.Table
	positions, err := t.ResolveList(op.Columns, "--cols-to-prefix")
	if err != nil {
		return err
	}
	lead := op.Str + op.Delimiter
	for _, pos := range positions {
		t.Transform(pos, func(s string) string { return lead + s })
	}
	ctx.verbosef("prefixed %d column(s) with %q", len(positions), lead)
	return nil
}
