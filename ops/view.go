package ops

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// View renders the table for human inspection: numbered rows, columns
// padded to their display width. Output goes to the primary stream and
// the invocation ends without emitting the tabular format.
type View struct {
	MaxRows int // --max-rows: rows shown before truncation (default 20)
	MaxCols int // --max-cols: columns shown; 0 means all
}

func (op *View) Name() string        { return "view" }
func (op *View) RequiresInput() bool { return false }

func (op *View) Apply(ctx *Context) error {
	t := ctx.Table
	defer ctx.finish()

	maxRows := op.MaxRows
	if maxRows <= 0 {
		maxRows = 20
	}
	nCols := t.NumCols()
	if op.MaxCols > 0 && op.MaxCols < nCols {
		nCols = op.MaxCols
	}
	nRows := t.NumRows()
	shown := nRows
	if shown > maxRows {
		shown = maxRows
	}

	if nCols == 0 {
		fmt.Fprintln(ctx.Out, "(empty table)")
		return nil
	}

	// Column widths over the visible window, display-width aware so
	// wide runes stay aligned.
	idxWidth := len(fmt.Sprintf("%d", shown))
	widths := make([]int, nCols)
	for c := 0; c < nCols; c++ {
		if t.HasHeader() {
			widths[c] = runewidth.StringWidth(t.Name(c))
		}
		for r := 0; r < shown; r++ {
			if w := runewidth.StringWidth(t.Cell(r, c)); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	if t.HasHeader() {
		b.WriteString(strings.Repeat(" ", idxWidth))
		for c := 0; c < nCols; c++ {
			b.WriteString("  ")
			b.WriteString(runewidth.FillRight(t.Name(c), widths[c]))
		}
		b.WriteString("\n")
	}
	for r := 0; r < shown; r++ {
		fmt.Fprintf(&b, "%*d", idxWidth, r)
		for c := 0; c < nCols; c++ {
			b.WriteString("  ")
			b.WriteString(runewidth.FillRight(t.Cell(r, c), widths[c]))
		}
		b.WriteString("\n")
	}
	if shown < nRows {
		fmt.Fprintf(&b, "... (%d more rows)\n", nRows-shown)
	}
	if nCols < t.NumCols() {
		fmt.Fprintf(&b, "... (%d more columns)\n", t.NumCols()-nCols)
	}
	_, err := fmt.Fprint(ctx.Out, b.String())
	return err
}
