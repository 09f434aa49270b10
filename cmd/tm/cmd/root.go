package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/tm"
	"github.com/kolkov/tm/internal/escape"
	"github.com/kolkov/tm/ops"
)

var (
	sepFlag  string
	noHeader bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:     "tm",
	Short:   "Manipulate delimiter-separated tables on the command line",
	Version: tm.Version,
	Long: `tm reads a delimiter-separated table from stdin or a file, applies one
operation, and writes the result to stdout.

Columns are referenced by 1-indexed position or, when the table has a
header row, by exact column name. Options taking several columns accept
a comma-separated list or the keyword "all".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. The caller reports the returned error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sepFlag, "sep", "s", `\t`,
		"input/output field separator; escape sequences like \\t are decoded")
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false,
		"treat the first line as data, not a header row")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"enable verbose diagnostics on stderr")
}

// runOp wires one operation through the pipeline: decode the separator,
// open the input (positional file argument or stdin), execute, and
// flush buffered output. A broken downstream pipe is a clean exit.
func runOp(args []string, op ops.Operation) error {
	sep, err := escape.Decode(sepFlag)
	if err != nil {
		return err
	}

	input := io.Reader(os.Stdin)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	stdout := bufio.NewWriter(os.Stdout)
	config := &tm.Config{
		Sep:      sep,
		NoHeader: noHeader,
		Verbose:  verbose,
		Diag:     os.Stderr,
	}
	if err := tm.Exec(op, input, stdout, config); err != nil {
		if tm.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	if err := stdout.Flush(); err != nil {
		if tm.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	return nil
}

// decodeFlag escape-decodes a string-valued option in place.
func decodeFlag(values ...*string) error {
	for _, v := range values {
		decoded, err := escape.Decode(*v)
		if err != nil {
			return err
		}
		*v = decoded
	}
	return nil
}
