package ops_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/tm/ops"
	"github.com/kolkov/tm/table"
)

func newContext(t *testing.T, hasHeader bool, cols ...table.Column) (*ops.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	tbl, err := table.New(hasHeader, cols...)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	diag := &bytes.Buffer{}
	return &ops.Context{Table: tbl, Out: out, Diag: diag, Sep: "\t"}, out, diag
}

func people(t *testing.T) (*ops.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	return newContext(t, true,
		table.Column{Name: "name", Cells: []string{"alice", "bob", "carol"}},
		table.Column{Name: "age", Cells: []string{"30", "25", "35"}},
		table.Column{Name: "city", Cells: []string{"paris", "berlin", "paris"}},
	)
}

func TestMove(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Move{From: "1", To: "3"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"age", "city", "name"}, ctx.Table.Names())
}

func TestMoveToAppendPosition(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Move{From: "name", To: "4"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"age", "city", "name"}, ctx.Table.Names())
}

func TestMoveRejectsBadSource(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Move{From: "0", To: "1"}
	err := op.Apply(ctx)
	var refErr *table.InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	// Failed resolution leaves the table untouched.
	assert.Equal(t, []string{"name", "age", "city"}, ctx.Table.Names())
}

func TestInsert(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Insert{At: "2", Value: "x", Header: "flag"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"name", "flag", "age", "city"}, ctx.Table.Names())
	assert.Equal(t, []string{"x", "x", "x"}, ctx.Table.Cells(1))
}

func TestInsertDefaultHeader(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Insert{At: "4", Value: ""}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, "new_column", ctx.Table.Name(3))
}

func TestDelete(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Delete{Columns: "age,1"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"city"}, ctx.Table.Names())
}

func TestDeleteAll(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Delete{Columns: "all"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, 0, ctx.Table.NumCols())
}

func TestQueryPattern(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Query{Column: "city", Pattern: "^par"}
	require.NoError(t, op.Apply(ctx))
	require.Equal(t, 2, ctx.Table.NumRows())
	assert.Equal(t, []string{"alice", "carol"}, ctx.Table.Cells(0))
}

func TestQueryStartsWith(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Query{Column: "name", StartsWith: "b"}
	require.NoError(t, op.Apply(ctx))
	require.Equal(t, 1, ctx.Table.NumRows())
	assert.Equal(t, "bob", ctx.Table.Cell(0, 0))
}

func TestQueryEndsWith(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Query{Column: "age", EndsWith: "5"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"bob", "carol"}, ctx.Table.Cells(0))
}

func TestQueryBadPattern(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Query{Column: "1", Pattern: "("}
	assert.Error(t, op.Apply(ctx))
}

func TestQueryRequiresACriterion(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Query{Column: "1"}
	assert.Error(t, op.Apply(ctx))
}

func TestSplit(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "id", Cells: []string{"1", "2"}},
		table.Column{Name: "pair", Cells: []string{"a:b", "c:d"}},
	)
	op := &ops.Split{Column: "pair", Delimiter: ":"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"id", "pair_split_col_1", "pair_split_col_2"}, ctx.Table.Names())
	assert.Equal(t, []string{"a", "c"}, ctx.Table.Cells(1))
	assert.Equal(t, []string{"b", "d"}, ctx.Table.Cells(2))
}

func TestSplitPadsShortCells(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "v", Cells: []string{"a:b:c", "d"}},
	)
	op := &ops.Split{Column: "1", Delimiter: ":", HeaderPrefix: "part"}
	require.NoError(t, op.Apply(ctx))
	require.Equal(t, 3, ctx.Table.NumCols())
	assert.Equal(t, []string{"d", "", ""}, ctx.Table.Row(1))
	assert.Equal(t, []string{"v_part_1", "v_part_2", "v_part_3"}, ctx.Table.Names())
}

func TestSplitHeaderless(t *testing.T) {
	ctx, _, _ := newContext(t, false,
		table.Column{Cells: []string{"a-b"}},
	)
	op := &ops.Split{Column: "1", Delimiter: "-"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"Column_1", "Column_2"}, ctx.Table.Names())
}

func TestMerge(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Merge{Columns: "1,3", Delimiter: "-", Header: "who_where"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"who_where", "age"}, ctx.Table.Names())
	assert.Equal(t, []string{"alice-paris", "bob-berlin", "carol-paris"}, ctx.Table.Cells(0))
}

func TestMergeExplicitTarget(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Merge{Columns: "1,3", Delimiter: "/", Target: "2"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"age", "merged_column"}, ctx.Table.Names())
}

func TestMergeNeedsTwoColumns(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Merge{Columns: "1", Delimiter: "-"}
	assert.Error(t, op.Apply(ctx))
}

func TestTranslateLiteral(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "city", FromVal: "paris", ToVal: "lyon", HasToVal: true, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"lyon", "berlin", "lyon"}, ctx.Table.Cells(2))
}

func TestTranslateRegex(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "age", FromVal: `\d`, ToVal: "#", HasToVal: true, Regex: true, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"##", "##", "##"}, ctx.Table.Cells(1))
}

func TestTranslateNewColumnName(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "city", FromVal: "paris", ToVal: "lyon", HasToVal: true}
	require.NoError(t, op.Apply(ctx))
	// Default "_translated" appends to the source column name.
	assert.Equal(t, []string{"name", "age", "city", "city_translated"}, ctx.Table.Names())
	assert.Equal(t, []string{"paris", "berlin", "paris"}, ctx.Table.Cells(2))
	assert.Equal(t, []string{"lyon", "berlin", "lyon"}, ctx.Table.Cells(3))
}

func TestTranslateExplicitEmptyToVal(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "name", FromVal: "o", ToVal: "", HasToVal: true, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"alice", "bb", "carl"}, ctx.Table.Cells(0))
}

func TestTranslateMissingToVal(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "name", FromVal: "o"}
	assert.Error(t, op.Apply(ctx))
}

func TestTranslateDictFile(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "dict.tsv")
	require.NoError(t, os.WriteFile(dict, []byte("paris\tParis\nberlin\tBerlin\n"), 0o644))

	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "city", DictFile: dict, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"Paris", "Berlin", "Paris"}, ctx.Table.Cells(2))
}

func TestTranslateDictWarnsOnMalformedLines(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "dict.tsv")
	require.NoError(t, os.WriteFile(dict, []byte("paris\tParis\nbogus-line\n"), 0o644))

	ctx, _, diag := people(t)
	op := &ops.Translate{Column: "city", DictFile: dict, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Contains(t, diag.String(), "Warning:")
	assert.Contains(t, diag.String(), "bogus-line")
}

func TestTranslateNoMatchDictLeavesValues(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "dict.tsv")
	require.NoError(t, os.WriteFile(dict, []byte("tokyo\tTokyo\n"), 0o644))

	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "city", DictFile: dict, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"paris", "berlin", "paris"}, ctx.Table.Cells(2))
}

func TestTranslateMissingDictFile(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Translate{Column: "city", DictFile: filepath.Join(t.TempDir(), "absent.tsv")}
	err := op.Apply(ctx)
	var dictErr *ops.DictFileError
	require.ErrorAs(t, err, &dictErr)
}

func TestSortAscending(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Sort{By: "age"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"25", "30", "35"}, ctx.Table.Cells(1))
	assert.Equal(t, []string{"bob", "alice", "carol"}, ctx.Table.Cells(0))
}

func TestSortDescendingMultiKey(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Sort{By: "city,name", Descending: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"paris", "paris", "berlin"}, ctx.Table.Cells(2))
	assert.Equal(t, []string{"carol", "alice", "bob"}, ctx.Table.Cells(0))
}

func TestCleanupHeader(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "My Column!!", Cells: []string{"1"}},
		table.Column{Name: "Other  Val", Cells: []string{"2"}},
	)
	op := &ops.CleanupHeader{}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"my_column", "other_val"}, ctx.Table.Names())
}

func TestCleanupHeaderKeepsNamesUnique(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "Value!", Cells: []string{"1"}},
		table.Column{Name: "Value?", Cells: []string{"2"}},
	)
	op := &ops.CleanupHeader{}
	require.NoError(t, op.Apply(ctx))
	names := ctx.Table.Names()
	assert.Equal(t, "value", names[0])
	assert.NotEqual(t, names[0], names[1])
}

func TestCleanupHeaderWarnsWithoutHeader(t *testing.T) {
	ctx, _, diag := newContext(t, false, table.Column{Cells: []string{"1"}})
	op := &ops.CleanupHeader{}
	require.NoError(t, op.Apply(ctx))
	assert.Contains(t, diag.String(), "Warning:")
}

func TestCleanupData(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "v", Cells: []string{"Hello World!", "A  B"}},
	)
	op := &ops.CleanupData{Columns: "all"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"hello_world", "a_b"}, ctx.Table.Cells(0))
}

func TestPrefix(t *testing.T) {
	ctx, _, _ := people(t)
	op := &ops.Prefix{Columns: "name", Str: "user", Delimiter: ":"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"user:alice", "user:bob", "user:carol"}, ctx.Table.Cells(0))
}

func TestSummarize(t *testing.T) {
	ctx, _, diag := newContext(t, true,
		table.Column{Name: "v", Cells: []string{"a", "a", "b", "c", "a"}},
	)
	op := &ops.Summarize{Columns: "v", TopN: 2}
	require.NoError(t, op.Apply(ctx))
	assert.True(t, ctx.Done())
	want := "--- Summary for v (Top 2) ---\n'a': 3\n'b': 1\n\n"
	assert.Equal(t, want, diag.String())
}

func TestSummarizeEmptyColumn(t *testing.T) {
	ctx, _, diag := newContext(t, true, table.Column{Name: "v", Cells: nil})
	op := &ops.Summarize{Columns: "1"}
	require.NoError(t, op.Apply(ctx))
	assert.Contains(t, diag.String(), "No data to summarize in this column.")
}

func TestStripInPlace(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "v", Cells: []string{"a1b2", "3c4"}},
	)
	op := &ops.Strip{Column: "v", Pattern: `\d`, InPlace: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"ab", "c"}, ctx.Table.Cells(0))
}

func TestStripNewColumn(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "price", Cells: []string{"$10", "$20"}},
	)
	op := &ops.Strip{Column: "price", Pattern: `\$`}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"price", "price_stripped"}, ctx.Table.Names())
	assert.Equal(t, []string{"$10", "$20"}, ctx.Table.Cells(0))
	assert.Equal(t, []string{"10", "20"}, ctx.Table.Cells(1))
}

func TestViewRendersAligned(t *testing.T) {
	ctx, out, _ := newContext(t, true,
		table.Column{Name: "name", Cells: []string{"alice", "bo"}},
		table.Column{Name: "age", Cells: []string{"30", "25"}},
	)
	op := &ops.View{}
	require.NoError(t, op.Apply(ctx))
	assert.True(t, ctx.Done())
	want := "" +
		"   name   age\n" +
		"0  alice  30 \n" +
		"1  bo     25 \n"
	assert.Equal(t, want, out.String())
}

func TestViewTruncates(t *testing.T) {
	cells := make([]string, 5)
	for i := range cells {
		cells[i] = "r"
	}
	ctx, out, _ := newContext(t, true,
		table.Column{Name: "a", Cells: cells},
		table.Column{Name: "b", Cells: cells},
		table.Column{Name: "c", Cells: cells},
	)
	op := &ops.View{MaxRows: 2, MaxCols: 2}
	require.NoError(t, op.Apply(ctx))
	assert.Contains(t, out.String(), "... (3 more rows)")
	assert.Contains(t, out.String(), "... (1 more columns)")
}

func TestViewEmptyTable(t *testing.T) {
	ctx, out, _ := newContext(t, true)
	op := &ops.View{}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, "(empty table)\n", out.String())
}

func TestCutLiteral(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "sample_a", Cells: []string{"1"}},
		table.Column{Name: "control", Cells: []string{"2"}},
		table.Column{Name: "sample_b", Cells: []string{"3"}},
	)
	op := &ops.Cut{Pattern: "sample"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"sample_a", "sample_b"}, ctx.Table.Names())
}

func TestCutRegex(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "sample_a", Cells: []string{"1"}},
		table.Column{Name: "control", Cells: []string{"2"}},
	)
	op := &ops.Cut{Pattern: "^con", Regex: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"control"}, ctx.Table.Names())
}

func TestCutNoMatchWarnsAndEmpties(t *testing.T) {
	ctx, _, diag := people(t)
	op := &ops.Cut{Pattern: "nope"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, 0, ctx.Table.NumCols())
	assert.Contains(t, diag.String(), "Warning:")
}

func TestCutMatchesPositionalLabels(t *testing.T) {
	ctx, _, _ := newContext(t, false,
		table.Column{Cells: []string{"a"}},
		table.Column{Cells: []string{"b"}},
	)
	op := &ops.Cut{Pattern: "Column_2"}
	require.NoError(t, op.Apply(ctx))
	require.Equal(t, 1, ctx.Table.NumCols())
	assert.Equal(t, "b", ctx.Table.Cell(0, 0))
}

func TestViewHeader(t *testing.T) {
	ctx, out, _ := people(t)
	op := &ops.ViewHeader{}
	require.NoError(t, op.Apply(ctx))
	assert.True(t, ctx.Done())
	assert.Equal(t, "1\tname\n2\tage\n3\tcity\n", out.String())
}

func TestViewHeaderEmptyTable(t *testing.T) {
	ctx, out, diag := newContext(t, true)
	op := &ops.ViewHeader{}
	require.NoError(t, op.Apply(ctx))
	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "Warning:")
}

func TestGroupBy(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "city", Cells: []string{"paris", "berlin", "paris", "paris"}},
		table.Column{Name: "name", Cells: []string{"alice", "bob", "carol", "alice"}},
	)
	op := &ops.GroupBy{Key: "city"}
	require.NoError(t, op.Apply(ctx))
	got := ctx.Table
	assert.Equal(t, []string{"city", "count", "values"}, got.Names())
	assert.Equal(t, []string{"paris", "berlin"}, got.Cells(0))
	// "alice" repeats within the paris group and is dropped.
	assert.Equal(t, []string{"2", "1"}, got.Cells(1))
	assert.Equal(t, []string{"alice;carol", "bob"}, got.Cells(2))
}

func TestGroupByKeepDuplicates(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "k", Cells: []string{"a", "a"}},
		table.Column{Name: "v", Cells: []string{"x", "x"}},
	)
	op := &ops.GroupBy{Key: "1", KeepDuplicates: true}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"2"}, ctx.Table.Cells(1))
	assert.Equal(t, []string{"x;x"}, ctx.Table.Cells(2))
}

func TestGroupByJoinsRemainingFields(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "a", Cells: []string{"1"}},
		table.Column{Name: "k", Cells: []string{"key"}},
		table.Column{Name: "b", Cells: []string{"2"}},
	)
	op := &ops.GroupBy{Key: "k"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"1,2"}, ctx.Table.Cells(2))
}

func TestGroupByUniquifiesDerivedNames(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "count", Cells: []string{"a"}},
		table.Column{Name: "v", Cells: []string{"x"}},
	)
	op := &ops.GroupBy{Key: "count"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"count", "count_1", "values"}, ctx.Table.Names())
}

func TestTranspose(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "name", Cells: []string{"alice", "bob"}},
		table.Column{Name: "age", Cells: []string{"30", "25"}},
	)
	op := &ops.Transpose{}
	require.NoError(t, op.Apply(ctx))
	got := ctx.Table
	assert.False(t, got.HasHeader())
	require.Equal(t, 3, got.NumCols())
	require.Equal(t, 2, got.NumRows())
	assert.Equal(t, []string{"name", "age"}, got.Cells(0))
	assert.Equal(t, []string{"alice", "30"}, got.Cells(1))
	assert.Equal(t, []string{"bob", "25"}, got.Cells(2))
}

func TestTransposeHeaderless(t *testing.T) {
	ctx, _, _ := newContext(t, false,
		table.Column{Cells: []string{"a", "b"}},
		table.Column{Cells: []string{"1", "2"}},
	)
	op := &ops.Transpose{}
	require.NoError(t, op.Apply(ctx))
	got := ctx.Table
	require.Equal(t, 2, got.NumCols())
	assert.Equal(t, []string{"a", "1"}, got.Cells(0))
	assert.Equal(t, []string{"b", "2"}, got.Cells(1))

	// Transposing again restores the original square table.
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"a", "b"}, ctx.Table.Cells(0))
	assert.Equal(t, []string{"1", "2"}, ctx.Table.Cells(1))
}

func TestCaptureColumn(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "text", Cells: []string{"a1 b22", "none", "c3"}},
	)
	op := &ops.Capture{Pattern: `\d+`, Column: "text"}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"captured", "text"}, ctx.Table.Names())
	assert.Equal(t, []string{"1;22", "", "3"}, ctx.Table.Cells(0))
}

func TestCaptureWholeRow(t *testing.T) {
	ctx, _, _ := newContext(t, true,
		table.Column{Name: "a", Cells: []string{"x1"}},
		table.Column{Name: "b", Cells: []string{"y2"}},
	)
	op := &ops.Capture{Pattern: `\d`}
	require.NoError(t, op.Apply(ctx))
	assert.Equal(t, []string{"1;2"}, ctx.Table.Cells(0))
}
