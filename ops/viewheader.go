package ops

import "fmt"

// ViewHeader lists every column's 1-indexed position and name, one per
// line, and ends the invocation.
type ViewHeader struct{}

func (op *ViewHeader) Name() string        { return "viewheader" }
func (op *ViewHeader) RequiresInput() bool { return false }

func (op *ViewHeader) Apply(ctx *Context) error {
	t := ctx.Table
	defer ctx.finish()
	if t.NumCols() == 0 {
		ctx.warnf("no columns found to display; the input might be empty")
		return nil
	}
	for pos, name := range t.Names() {
		if _, err := fmt.Fprintf(ctx.Out, "%d\t%s\n", pos+1, name); err != nil {
			return err
		}
	}
	return nil
}
