package ops

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kolkov/tm/internal/rx"
	"github.com/kolkov/tm/table"
)

// DictFileError reports a translation dictionary that does not exist or
// cannot be read.
type DictFileError struct {
	Path string
	Err  error
}

func (e *DictFileError) Error() string {
	return fmt.Sprintf("cannot read dictionary file %q: %v", e.Path, e.Err)
}

func (e *DictFileError) Unwrap() error { return e.Err }

// Translate rewrites the values of one column, either through a
// two-column dictionary file (exact match, unmatched values pass through)
// or through a single from→to replacement (literal, or regex with Regex
// set). The result replaces the column in place or lands in a new column
// right after it.
type Translate struct {
	Column   string // -i/--col-idx
	DictFile string // -d/--dict-file: key<sep>value file, read fully up front
	FromVal  string // --from-val, escape-decoded
	ToVal    string // --to-val, escape-decoded
	HasToVal bool   // distinguishes an explicit empty --to-val from an absent one
	Regex    bool   // --regex: treat FromVal as a pattern
	Header   string // --new-header: leading "_" appends to the source name
	InPlace  bool   // --in-place: overwrite instead of adding a column
}

func (op *Translate) Name() string        { return "translate" }
func (op *Translate) RequiresInput() bool { return true }

func (op *Translate) Apply(ctx *Context) error {
	t := ctx.Table
	pos, err := t.Resolve(op.Column, table.RoleColumn, "--col-idx")
	if err != nil {
		return err
	}

	var mapCell func(string) string
	switch {
	case op.DictFile != "":
		dict, err := loadDict(ctx, op.DictFile)
		if err != nil {
			return err
		}
		ctx.verbosef("loaded %d dictionary entries from %q", len(dict), op.DictFile)
		mapCell = func(s string) string {
			if v, ok := dict[s]; ok {
				return v
			}
			return s
		}
	case op.FromVal != "":
		if !op.HasToVal {
			return fmt.Errorf("translate: --to-val is required with --from-val")
		}
		if op.Regex {
			re, err := rx.Compile(op.FromVal)
			if err != nil {
				return err
			}
			mapCell = func(s string) string { return re.ReplaceAllString(s, op.ToVal) }
		} else {
			mapCell = func(s string) string { return strings.ReplaceAll(s, op.FromVal, op.ToVal) }
		}
		ctx.verbosef("translating column %q from %q to %q (regex: %v)", t.Name(pos), op.FromVal, op.ToVal, op.Regex)
	default:
		return fmt.Errorf("translate: either --dict-file or --from-val is required")
	}

	cells := t.Cells(pos)
	translated := make([]string, len(cells))
	for i, s := range cells {
		translated[i] = mapCell(s)
	}

	if op.InPlace {
		t.Replace(pos, translated)
		return nil
	}
	header := op.Header
	if header == "" {
		header = "_translated"
	}
	name := t.Insert(pos+1, t.DeriveName(pos, header), translated)
	ctx.verbosef("translated column inserted as %q after %q", name, t.Name(pos))
	return nil
}

// loadDict reads a two-column key<sep>value file. Blank lines are
// skipped; lines without the separator are warned about and ignored.
func loadDict(ctx *Context, path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DictFileError{Path: path, Err: err}
	}
	defer f.Close()

	dict := make(map[string]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxDictLine)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ctx.Sep)
		if !found {
			ctx.warnf("skipping malformed dictionary line %q", line)
			continue
		}
		dict[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, &DictFileError{Path: path, Err: err}
	}
	return dict, nil
}

const maxDictLine = 16 * 1024 * 1024
