package table

import (
	"io"
	"strings"
)

// Write serializes t to w in the same delimiter-separated format Read
// consumes: one record per line, the header row first when present.
func Write(w io.Writer, t *Table, sep string) error {
	if t.NumCols() == 0 {
		return nil
	}
	var b strings.Builder
	if t.hasHeader {
		b.WriteString(strings.Join(t.Names(), sep))
		b.WriteByte('\n')
	}
	rows := t.NumRows()
	for i := 0; i < rows; i++ {
		for c := range t.cols {
			if c > 0 {
				b.WriteString(sep)
			}
			b.WriteString(t.cols[c].Cells[i])
		}
		b.WriteByte('\n')
		// Flush in chunks so huge tables don't double in memory.
		if b.Len() >= 1<<20 {
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}
			b.Reset()
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
