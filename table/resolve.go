package table

import (
	"strconv"
	"strings"
)

// Role describes how a resolved position will be used. Destination and
// insertion-point arguments may name the position one past the last
// column, meaning "append after the last column"; plain column
// references may not.
type Role int

const (
	// RoleColumn references an existing column.
	RoleColumn Role = iota
	// RoleInsert references an insertion point, which may be NumCols.
	RoleInsert
)

// Resolve converts a user-supplied column token into a zero-based
// position against the table's current columns. A token that parses as
// an integer is treated as a 1-based position; anything else is an exact,
// case-sensitive header name. arg names the flag the token came from and
// is included in every error.
func (t *Table) Resolve(token string, role Role, arg string) (int, error) {
	token = strings.TrimSpace(token)
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 {
			return 0, &InvalidReferenceError{Arg: arg, Token: token}
		}
		pos := n - 1
		if pos == len(t.cols) && role == RoleInsert {
			return pos, nil
		}
		if pos >= len(t.cols) {
			return 0, &OutOfBoundsError{Arg: arg, Index: n, Max: len(t.cols)}
		}
		return pos, nil
	}
	if !t.hasHeader {
		return 0, &NoHeaderError{Arg: arg, Name: token}
	}
	for i := range t.cols {
		if t.cols[i].Name == token {
			return i, nil
		}
	}
	return 0, &UnknownColumnError{Arg: arg, Name: token, Available: t.Names()}
}

// ResolveList converts a comma-separated token list into zero-based
// positions, in the order given. The literal "all" (case-insensitive)
// expands to every current position. Empty pieces from stray commas are
// skipped; duplicates are preserved. Every piece must reference an
// existing column; the insertion-point allowance does not apply.
func (t *Table) ResolveList(token string, arg string) ([]int, error) {
	if strings.EqualFold(strings.TrimSpace(token), "all") {
		all := make([]int, len(t.cols))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	var positions []int
	for _, piece := range strings.Split(token, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		pos, err := t.Resolve(piece, RoleColumn, arg)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
