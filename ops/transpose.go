package ops

import "github.com/kolkov/tm/table"

// Transpose flips the table so rows become columns. A header row, when
// present, is transposed along with the data and becomes the first
// column; the result is always headerless.
type Transpose struct{}

func (op *Transpose) Name() string        { return "transpose" }
func (op *Transpose) RequiresInput() bool { return true }

func (op *Transpose) Apply(ctx *Context) error {
	t := ctx.Table

	// Materialize the full matrix, header row included.
	var matrix [][]string
	if t.HasHeader() {
		matrix = append(matrix, t.Names())
	}
	rows := t.NumRows()
	for r := 0; r < rows; r++ {
		matrix = append(matrix, t.Row(r))
	}

	cols := make([]table.Column, len(matrix))
	for c := range matrix {
		cells := make([]string, t.NumCols())
		copy(cells, matrix[c])
		cols[c] = table.Column{Cells: cells}
	}
	flipped, err := table.New(false, cols...)
	if err != nil {
		return err
	}
	ctx.verbosef("transposed %dx%d table", rows, t.NumCols())
	ctx.Table = flipped
	return nil
}
