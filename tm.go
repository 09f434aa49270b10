package tm

import (
	"bytes"
	"io"

	"github.com/kolkov/tm/ops"
	"github.com/kolkov/tm/table"
)

// Version is the tm version string.
const Version = "0.1.0"

// Run parses the input into a table, applies one operation, and
// serializes the result. It is the single-operation-per-invocation
// pipeline behind the tm command.
//
// Returns the primary output as a string, or an error if parsing,
// resolution, or the operation fails. If config.Output is set, output
// is written there and the returned string is empty.
//
// Example:
//
//	out, err := tm.Run(&ops.Move{From: "1", To: "3"},
//	    strings.NewReader("a\tb\tc\n1\t2\t3\n"), nil)
//	// out: "b\tc\ta\n2\t3\t1\n"
func Run(op ops.Operation, input io.Reader, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	var buf *bytes.Buffer
	out := config.Output
	if out == nil {
		buf = &bytes.Buffer{}
		out = buf
	}

	t, err := table.Read(input, config.Sep, !config.NoHeader)
	if err != nil {
		return "", err
	}
	if op.RequiresInput() && t.NumCols() == 0 {
		return "", &table.EmptyInputError{}
	}

	ctx := &ops.Context{
		Table:   t,
		Out:     out,
		Diag:    config.Diag,
		Sep:     config.Sep,
		Verbose: config.Verbose,
	}
	if err := op.Apply(ctx); err != nil {
		return "", err
	}
	if !ctx.Done() {
		if err := table.Write(out, ctx.Table, config.Sep); err != nil {
			return "", err
		}
	}

	if buf != nil {
		return buf.String(), nil
	}
	return "", nil
}

// Exec runs op with output directed to the given writer. It is the
// variant used by the CLI, where output goes to a buffered stdout.
func Exec(op ops.Operation, input io.Reader, output io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	config.Output = output
	_, err := Run(op, input, config)
	return err
}
