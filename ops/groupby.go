package ops

import (
	"strconv"
	"strings"

	"github.com/kolkov/tm/table"
)

// GroupBy collapses rows sharing a key column into one row per key: the
// key, the group size, and the grouped values (the remaining fields of
// each row joined by ",", groups joined by ";"). Keys appear in
// first-seen order. Repeated values within a group are dropped unless
// KeepDuplicates is set; the first occurrence decides the order either
// way.
type GroupBy struct {
	Key            string // -i/--key-col: key column position or name (default first)
	KeepDuplicates bool   // --keep-duplicates
}

func (op *GroupBy) Name() string        { return "groupby" }
func (op *GroupBy) RequiresInput() bool { return true }

func (op *GroupBy) Apply(ctx *Context) error {
	t := ctx.Table
	key := op.Key
	if key == "" {
		key = "1"
	}
	pos, err := t.Resolve(key, table.RoleColumn, "--key-col")
	if err != nil {
		return err
	}

	var order []string
	groups := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	rows := t.NumRows()
	for r := 0; r < rows; r++ {
		k := t.Cell(r, pos)
		rest := make([]string, 0, t.NumCols()-1)
		for c := 0; c < t.NumCols(); c++ {
			if c != pos {
				rest = append(rest, t.Cell(r, c))
			}
		}
		v := strings.Join(rest, ",")
		if _, ok := groups[k]; !ok {
			order = append(order, k)
			seen[k] = make(map[string]bool)
		}
		if !op.KeepDuplicates {
			if seen[k][v] {
				continue
			}
			seen[k][v] = true
		}
		groups[k] = append(groups[k], v)
	}

	keys := make([]string, len(order))
	counts := make([]string, len(order))
	values := make([]string, len(order))
	for i, k := range order {
		keys[i] = k
		counts[i] = strconv.Itoa(len(groups[k]))
		values[i] = strings.Join(groups[k], ";")
	}

	grouped, err := table.New(t.HasHeader(), table.Column{Name: t.Name(pos), Cells: keys})
	if err != nil {
		return err
	}
	// Insert runs the names through the allocator in case the key
	// column is itself called "count" or "values".
	grouped.Insert(1, "count", counts)
	grouped.Insert(2, "values", values)
	ctx.verbosef("grouped %d rows into %d group(s) by column %q", rows, len(order), t.Name(pos))
	ctx.Table = grouped
	return nil
}
