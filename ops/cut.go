package ops

import (
	"strings"

	"github.com/kolkov/tm/internal/rx"
)

// Cut keeps only the columns whose name matches a pattern, in their
// original order. The pattern is a literal substring unless Regex is set.
// Headerless columns match against their positional labels ("Column_3").
type Cut struct {
	Pattern string // -p/--pattern
	Regex   bool   // --regex
}

func (op *Cut) Name() string        { return "cut" }
func (op *Cut) RequiresInput() bool { return true }

func (op *Cut) Apply(ctx *Context) error {
	t := ctx.Table

	match := func(name string) bool { return strings.Contains(name, op.Pattern) }
	if op.Regex {
		re, err := rx.Compile(op.Pattern)
		if err != nil {
			return err
		}
		match = re.MatchString
	}

	var selected []int
	for pos, name := range t.Names() {
		if match(name) {
			selected = append(selected, pos)
		}
	}
	if len(selected) == 0 {
		ctx.warnf("no columns matched the pattern %q; outputting empty data", op.Pattern)
	}
	ctx.verbosef("keeping %d column(s) matching %q", len(selected), op.Pattern)
	t.Keep(selected)
	return nil
}
