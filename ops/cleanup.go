package ops

import (
	"strings"

	"github.com/kolkov/tm/internal/rx"
)

var (
	nonWordRe = rx.MustCompile(`[^\w]`)
	squeezeRe = rx.MustCompile(`_{2,}`)
)

// cleanString normalizes a header or cell value: lowercase, spaces to
// underscores, non-word characters removed, repeated underscores
// squeezed.
func cleanString(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = nonWordRe.RemoveAll(s)
	s = squeezeRe.ReplaceAllString(s, "_")
	return s
}

// CleanupHeader applies cleanString to every header name. On a
// headerless table it warns and leaves the table untouched.
type CleanupHeader struct{}

func (op *CleanupHeader) Name() string        { return "cleanup_header" }
func (op *CleanupHeader) RequiresInput() bool { return true }

func (op *CleanupHeader) Apply(ctx *Context) error {
	t := ctx.Table
	if !t.HasHeader() {
		ctx.warnf("no header present (--no-header); cleanup_header has no effect")
		return nil
	}
	for pos := 0; pos < t.NumCols(); pos++ {
		cleaned := cleanString(t.Name(pos))
		if cleaned == t.Name(pos) {
			continue
		}
		// Cleaning may collapse distinct names; keep them unique.
		t.Rename(pos, "")
		t.Rename(pos, t.UniqueName(cleaned))
	}
	ctx.verbosef("cleaned header: %s", strings.Join(t.Names(), ", "))
	return nil
}

// CleanupData applies cleanString to every cell of the selected columns.
type CleanupData struct {
	Columns string // -i/--cols-to-clean: comma-separated positions/names, or "all"
}

func (op *CleanupData) Name() string        { return "cleanup_data" }
func (op *CleanupData) RequiresInput() bool { return true }

func (op *CleanupData) Apply(ctx *Context) error {
	t := ctx.Table
	positions, err := t.ResolveList(op.Columns, "--cols-to-clean")
	if err != nil {
		return err
	}
	for _, pos := range positions {
		t.Transform(pos, cleanString)
	}
	ctx.verbosef("cleaned data in %d column(s)", len(positions))
	return nil
}
