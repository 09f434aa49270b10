package table

import (
	"reflect"
	"testing"
)

func mustTable(t *testing.T, hasHeader bool, cols ...Column) *Table {
	t.Helper()
	tbl, err := New(hasHeader, cols...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tbl
}

func sample(t *testing.T) *Table {
	return mustTable(t, true,
		Column{Name: "a", Cells: []string{"1", "4"}},
		Column{Name: "b", Cells: []string{"2", "5"}},
		Column{Name: "c", Cells: []string{"3", "6"}},
	)
}

func TestNewRejectsUnevenColumns(t *testing.T) {
	_, err := New(true,
		Column{Name: "a", Cells: []string{"1", "2"}},
		Column{Name: "b", Cells: []string{"1"}},
	)
	if err == nil {
		t.Fatal("New() should reject columns of unequal length")
	}
}

func TestPositionalLabels(t *testing.T) {
	tbl := mustTable(t, false,
		Column{Cells: []string{"1"}},
		Column{Cells: []string{"2"}},
		Column{Cells: []string{"3"}},
	)
	want := []string{"Column_1", "Column_2", "Column_3"}
	if got := tbl.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	// Labels follow structural changes.
	tbl.Delete([]int{1})
	want = []string{"Column_1", "Column_2"}
	if got := tbl.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() after delete = %v, want %v", got, want)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	// move i->j then j->i restores the original table, for any i != j.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			tbl := sample(t)
			tbl.Move(i, j)
			tbl.Move(j, i)
			if got, want := tbl.Names(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
				t.Errorf("move %d->%d->%d: Names() = %v, want %v", i, j, i, got, want)
			}
			if got, want := tbl.Row(0), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
				t.Errorf("move %d->%d->%d: Row(0) = %v, want %v", i, j, i, got, want)
			}
		}
	}
}

func TestMoveClampsToAppend(t *testing.T) {
	tbl := sample(t)
	tbl.Move(0, 3) // destination one past the popped table's end
	if got, want := tbl.Names(), []string{"b", "c", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got, want := tbl.Row(0), []string{"2", "3", "1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(0) = %v, want %v", got, want)
	}
}

func TestInsertUniquifiesName(t *testing.T) {
	tbl := sample(t)
	if got := tbl.Insert(0, "a", []string{"x", "y"}); got != "a_1" {
		t.Errorf("Insert() name = %q, want %q", got, "a_1")
	}
	if got := tbl.Insert(0, "a", []string{"x", "y"}); got != "a_2" {
		t.Errorf("second Insert() name = %q, want %q", got, "a_2")
	}
	names := tbl.Names()
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name %q in %v", n, names)
		}
		seen[n] = true
	}
}

func TestInsertConstBroadcasts(t *testing.T) {
	tbl := sample(t)
	tbl.InsertConst(3, "d", "z")
	if got, want := tbl.Cells(3), []string{"z", "z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(3) = %v, want %v", got, want)
	}
}

func TestDeleteDuplicatesOnce(t *testing.T) {
	tbl := sample(t)
	tbl.Delete([]int{1, 1, 1})
	if got, want := tbl.Names(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestDeleteDescendingKeepsIndicesValid(t *testing.T) {
	tbl := sample(t)
	tbl.Delete([]int{0, 2})
	if got, want := tbl.Names(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestKeepPreservesGivenOrder(t *testing.T) {
	tbl := sample(t)
	tbl.Keep([]int{2, 0})
	if got, want := tbl.Names(), []string{"c", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestSortByIsStable(t *testing.T) {
	tbl := mustTable(t, true,
		Column{Name: "k", Cells: []string{"b", "a", "b", "a"}},
		Column{Name: "v", Cells: []string{"1", "2", "3", "4"}},
	)
	tbl.SortBy([]int{0}, false)
	if got, want := tbl.Cells(1), []string{"2", "4", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(1) = %v, want %v", got, want)
	}
	// Sorting again by the same key changes nothing.
	tbl.SortBy([]int{0}, false)
	if got, want := tbl.Cells(1), []string{"2", "4", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(1) after second sort = %v, want %v", got, want)
	}
}

func TestSortByDescendingKeepsTieOrder(t *testing.T) {
	tbl := mustTable(t, true,
		Column{Name: "k", Cells: []string{"a", "b", "a", "b"}},
		Column{Name: "v", Cells: []string{"1", "2", "3", "4"}},
	)
	tbl.SortBy([]int{0}, true)
	if got, want := tbl.Cells(1), []string{"2", "4", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(1) = %v, want %v", got, want)
	}
}

func TestSortByMultiKey(t *testing.T) {
	tbl := mustTable(t, true,
		Column{Name: "k1", Cells: []string{"b", "a", "b", "a"}},
		Column{Name: "k2", Cells: []string{"2", "2", "1", "1"}},
	)
	tbl.SortBy([]int{0, 1}, false)
	if got, want := tbl.Cells(0), []string{"a", "a", "b", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(0) = %v, want %v", got, want)
	}
	if got, want := tbl.Cells(1), []string{"1", "2", "1", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(1) = %v, want %v", got, want)
	}
}

func TestFilterRows(t *testing.T) {
	tbl := sample(t)
	cells := tbl.Cells(0)
	tbl.FilterRows(func(row int) bool { return cells[row] == "4" })
	if got := tbl.NumRows(); got != 1 {
		t.Fatalf("NumRows() = %d, want 1", got)
	}
	if got, want := tbl.Row(0), []string{"4", "5", "6"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(0) = %v, want %v", got, want)
	}
}

func TestTransform(t *testing.T) {
	tbl := sample(t)
	tbl.Transform(1, func(s string) string { return s + "!" })
	if got, want := tbl.Cells(1), []string{"2!", "5!"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cells(1) = %v, want %v", got, want)
	}
}
