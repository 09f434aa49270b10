package ops

import (
	"fmt"
	"sort"
)

// Summarize reports the most frequent values of the selected columns to
// the diagnostic stream and ends the invocation without emitting a
// table. Ties are broken by first-encountered order.
type Summarize struct {
	Columns string // -i/--cols-to-summarize: comma-separated positions/names, or "all"
	TopN    int    // -n/--top-n: number of values to report per column
}

func (op *Summarize) Name() string        { return "summarize" }
func (op *Summarize) RequiresInput() bool { return false }

func (op *Summarize) Apply(ctx *Context) error {
	t := ctx.Table
	positions, err := t.ResolveList(op.Columns, "--cols-to-summarize")
	if err != nil {
		return err
	}
	topN := op.TopN
	if topN <= 0 {
		topN = 5
	}

	for _, pos := range positions {
		fmt.Fprintf(ctx.Diag, "--- Summary for %s (Top %d) ---\n", t.Name(pos), topN)
		top := topValues(t.Cells(pos), topN)
		if len(top) == 0 {
			fmt.Fprintln(ctx.Diag, "No data to summarize in this column.")
		}
		for _, vc := range top {
			fmt.Fprintf(ctx.Diag, "'%s': %d\n", vc.value, vc.count)
		}
		fmt.Fprintln(ctx.Diag)
	}
	ctx.finish()
	return nil
}

type valueCount struct {
	value string
	count int
}

// topValues counts cell values and returns up to n of them, most
// frequent first, ties in first-seen order.
func topValues(cells []string, n int) []valueCount {
	counts := make(map[string]int, len(cells))
	var order []string
	for _, v := range cells {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	out := make([]valueCount, 0, len(order))
	for _, v := range order {
		out = append(out, valueCount{value: v, count: counts[v]})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].count > out[b].count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
