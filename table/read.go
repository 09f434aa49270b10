package table

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single input line (64 MiB).
const maxLineSize = 64 * 1024 * 1024

// Read parses delimiter-separated text into a Table. Fields are split on
// every occurrence of sep with no quoting. When hasHeader is true the
// first line names the columns; otherwise columns get positional labels.
// Rows shorter than the widest row are padded with empty cells, and a
// short header row is padded with positional labels. A nil or empty
// reader yields an empty table.
func Read(r io.Reader, sep string, hasHeader bool) (*Table, error) {
	if r == nil {
		return New(hasHeader)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var records [][]string
	width := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		fields := strings.Split(line, sep)
		if len(fields) > width {
			width = len(fields)
		}
		records = append(records, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return New(hasHeader)
	}

	var header []string
	if hasHeader {
		header = records[0]
		records = records[1:]
	}

	cols := make([]Column, width)
	for c := 0; c < width; c++ {
		name := PositionalName(c)
		if hasHeader && c < len(header) {
			name = header[c]
		}
		cells := make([]string, len(records))
		for r, rec := range records {
			if c < len(rec) {
				cells[r] = rec[c]
			}
		}
		cols[c] = Column{Name: name, Cells: cells}
	}
	return New(hasHeader, cols...)
}
