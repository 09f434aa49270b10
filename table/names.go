package table

import (
	"fmt"
	"strings"
)

// PositionalName renders the display label of a headerless column at the
// given zero-based position, e.g. PositionalName(2) == "Column_3".
func PositionalName(pos int) string {
	return fmt.Sprintf("Column_%d", pos+1)
}

// UniqueName returns candidate if no column carries that name already,
// otherwise the first unused of candidate_1, candidate_2, …
// For headerless tables the candidate is returned unchanged; positional
// labels cannot collide.
func (t *Table) UniqueName(candidate string) string {
	if !t.hasHeader || !t.hasName(candidate) {
		return candidate
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d", candidate, i)
		if !t.hasName(name) {
			return name
		}
	}
}

// DeriveName resolves a --new-header value against the column at pos.
// A requested name starting with "_" is appended to the column's current
// name (so the default "_translated" yields "price_translated"); any
// other value replaces the name outright. The result is not uniquified;
// pass it through UniqueName or Insert.
func (t *Table) DeriveName(pos int, requested string) string {
	if strings.HasPrefix(requested, "_") {
		return t.Name(pos) + requested
	}
	return requested
}

func (t *Table) hasName(name string) bool {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return true
		}
	}
	return false
}
