// Package table implements the in-memory column store the tm operations
// work on: an ordered collection of equal-length string columns, with
// reference resolution by 1-indexed position or header name.
package table

import (
	"fmt"
	"sort"
	"strings"
)

// Column is one named column of string cells. For headerless tables the
// name is a rendered positional label such as "Column_3".
type Column struct {
	Name  string
	Cells []string
}

// Table is an ordered, mutable collection of columns. Every column holds
// exactly the same number of cells; structural operations preserve that
// invariant.
type Table struct {
	cols      []Column
	hasHeader bool
}

// New builds a Table from columns, validating that all cell slices have
// equal length. Column names are taken as given for headered tables and
// replaced with positional labels otherwise.
func New(hasHeader bool, cols ...Column) (*Table, error) {
	t := &Table{cols: cols, hasHeader: hasHeader}
	if len(cols) > 0 {
		rows := len(cols[0].Cells)
		for i := range cols {
			if len(cols[i].Cells) != rows {
				return nil, fmt.Errorf("column %d has %d cells, want %d", i+1, len(cols[i].Cells), rows)
			}
		}
	}
	if !hasHeader {
		t.relabel()
	}
	return t, nil
}

// HasHeader reports whether column identity is name-based.
func (t *Table) HasHeader() bool { return t.hasHeader }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Cells)
}

// Name returns the display name of the column at pos.
func (t *Table) Name(pos int) string { return t.cols[pos].Name }

// Names returns the display names of all columns in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i := range t.cols {
		names[i] = t.cols[i].Name
	}
	return names
}

// Cells returns the cell slice of the column at pos. The slice is the
// table's own storage; callers must not grow or shrink it.
func (t *Table) Cells(pos int) []string { return t.cols[pos].Cells }

// Cell returns the value at (row, pos).
func (t *Table) Cell(row, pos int) string { return t.cols[pos].Cells[row] }

// Row returns a copy of row i across all columns.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.cols))
	for c := range t.cols {
		row[c] = t.cols[c].Cells[i]
	}
	return row
}

// Rename sets the display name of the column at pos.
func (t *Table) Rename(pos int, name string) { t.cols[pos].Name = name }

// Pop removes and returns the column at pos.
func (t *Table) Pop(pos int) Column {
	col := t.cols[pos]
	t.cols = append(t.cols[:pos], t.cols[pos+1:]...)
	t.relabel()
	return col
}

// Insert places a new column at pos, shifting later columns right.
// pos may equal NumCols, meaning append. The name is passed through the
// uniqueness allocator; the final name is returned. cells must have
// exactly NumRows elements (any length is accepted into an empty table).
func (t *Table) Insert(pos int, name string, cells []string) string {
	if len(t.cols) > 0 && len(cells) != t.NumRows() {
		panic(fmt.Sprintf("table: inserting %d cells into table with %d rows", len(cells), t.NumRows()))
	}
	name = t.UniqueName(name)
	t.cols = append(t.cols, Column{})
	copy(t.cols[pos+1:], t.cols[pos:])
	t.cols[pos] = Column{Name: name, Cells: cells}
	t.relabel()
	if !t.hasHeader {
		name = t.cols[pos].Name
	}
	return name
}

// InsertConst places a new column at pos with value broadcast to every row.
func (t *Table) InsertConst(pos int, name, value string) string {
	cells := make([]string, t.NumRows())
	for i := range cells {
		cells[i] = value
	}
	return t.Insert(pos, name, cells)
}

// Move pops the column at from and re-inserts it at to. A destination
// beyond the last column of the popped table clamps to append.
func (t *Table) Move(from, to int) {
	col := t.Pop(from)
	if to > len(t.cols) {
		to = len(t.cols)
	}
	t.cols = append(t.cols, Column{})
	copy(t.cols[to+1:], t.cols[to:])
	t.cols[to] = col
	t.relabel()
}

// Delete removes the columns at the given positions. Duplicates are
// removed once; positions are processed in descending order so earlier
// indices stay valid.
func (t *Table) Delete(positions []int) {
	uniq := make([]int, 0, len(positions))
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if !seen[p] {
			seen[p] = true
			uniq = append(uniq, p)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(uniq)))
	for _, p := range uniq {
		t.cols = append(t.cols[:p], t.cols[p+1:]...)
	}
	t.relabel()
}

// Keep reduces the table to the columns at the given positions, in the
// order given.
func (t *Table) Keep(positions []int) {
	kept := make([]Column, 0, len(positions))
	for _, p := range positions {
		kept = append(kept, t.cols[p])
	}
	t.cols = kept
	t.relabel()
}

// Replace swaps the cell data of the column at pos.
func (t *Table) Replace(pos int, cells []string) {
	if len(cells) != t.NumRows() {
		panic(fmt.Sprintf("table: replacing %d cells in table with %d rows", len(cells), t.NumRows()))
	}
	t.cols[pos].Cells = cells
}

// Transform applies f to every cell of the column at pos.
func (t *Table) Transform(pos int, f func(string) string) {
	cells := t.cols[pos].Cells
	for i := range cells {
		cells[i] = f(cells[i])
	}
}

// FilterRows keeps only the rows for which keep returns true, preserving
// input order and row alignment across columns.
func (t *Table) FilterRows(keep func(row int) bool) {
	rows := t.NumRows()
	idx := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	t.permute(idx)
}

// SortBy reorders rows by the given key columns, earlier keys first.
// Comparison is plain string comparison. The sort is stable: rows with
// equal keys retain their input order, for ascending and descending
// alike.
func (t *Table) SortBy(keys []int, descending bool) {
	rows := t.NumRows()
	idx := make([]int, rows)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		for _, k := range keys {
			c := strings.Compare(t.cols[k].Cells[idx[a]], t.cols[k].Cells[idx[b]])
			if c == 0 {
				continue
			}
			if descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	t.permute(idx)
}

// permute rebuilds every column with rows in the given index order.
// Also used for filtering, where idx is a subset.
func (t *Table) permute(idx []int) {
	for c := range t.cols {
		old := t.cols[c].Cells
		cells := make([]string, len(idx))
		for i, j := range idx {
			cells[i] = old[j]
		}
		t.cols[c].Cells = cells
	}
}

// relabel refreshes positional labels after a structural change. Headered
// tables keep their names.
func (t *Table) relabel() {
	if t.hasHeader {
		return
	}
	for i := range t.cols {
		t.cols[i].Name = PositionalName(i)
	}
}
