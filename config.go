package tm

import (
	"io"
	"os"
)

// Config holds the options shared by every table operation.
type Config struct {
	// Sep is the input/output field separator (default: tab). It is
	// also the key/value separator of translation dictionary files.
	// Escape sequences in CLI input are decoded before reaching here.
	Sep string

	// NoHeader marks the first input line as data rather than a header
	// row. Without a header, columns are referenced by 1-indexed
	// position only and carry labels like "Column_3".
	NoHeader bool

	// Verbose enables diagnostic messages on Diag.
	Verbose bool

	// Output is the primary output writer. If nil, output is captured
	// and returned from Run.
	Output io.Writer

	// Diag is the writer for warnings, verbose messages, and summary
	// reports. If nil, os.Stderr is used.
	Diag io.Writer
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Sep == "" {
		c.Sep = "\t"
	}
	if c.Diag == nil {
		c.Diag = os.Stderr
	}
}
