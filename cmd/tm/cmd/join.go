package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/tm"
	"github.com/kolkov/tm/internal/escape"
	"github.com/kolkov/tm/table"
)

var (
	joinValueIdx    int
	joinFilenameSep string
	joinMissing     string
)

var joinCmd = &cobra.Command{
	Use:   "join [files...]",
	Short: "Outer-join key/value files on their first column",
	Long: `Outer-join many key/value files into one table: one row per key, one
column per file, named after the file. Keys are taken from each file's
first column, values from --value-col. Keys missing from a file get
--missing-value. Rows are sorted by key. With no file arguments, file
names are read from stdin, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sep, err := escape.Decode(sepFlag)
		if err != nil {
			return err
		}
		files := args
		if len(files) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if name := strings.TrimSpace(scanner.Text()); name != "" {
					files = append(files, name)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("join: no input files")
		}

		joined, err := joinFiles(files, sep, joinValueIdx, joinFilenameSep, joinMissing)
		if err != nil {
			return err
		}

		stdout := bufio.NewWriter(os.Stdout)
		if err := table.Write(stdout, joined, sep); err != nil {
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
	},
}

// joinFiles builds the joined table: an ID column of all keys in sorted
// order, then one value column per file in argument order.
func joinFiles(files []string, sep string, valueIdx int, filenameSep, missing string) (*table.Table, error) {
	if valueIdx < 2 {
		return nil, fmt.Errorf("join: --value-col must be 2 or greater")
	}

	var keys []string
	seen := make(map[string]bool)
	values := make([]map[string]string, len(files))

	for i, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		t, err := table.Read(f, sep, false)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		if t.NumCols() < valueIdx {
			return nil, fmt.Errorf("%s: has %d column(s), need at least %d", path, t.NumCols(), valueIdx)
		}
		values[i] = make(map[string]string, t.NumRows())
		for r := 0; r < t.NumRows(); r++ {
			key := t.Cell(r, 0)
			values[i][key] = t.Cell(r, valueIdx-1)
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)

	joined, err := table.New(true, table.Column{Name: "ID", Cells: keys})
	if err != nil {
		return nil, err
	}
	for i, path := range files {
		cells := make([]string, len(keys))
		for r, key := range keys {
			if v, ok := values[i][key]; ok {
				cells[r] = v
			} else {
				cells[r] = missing
			}
		}
		joined.Insert(joined.NumCols(), columnNameFor(path, filenameSep), cells)
	}
	return joined, nil
}

// columnNameFor derives a column name from a file path: the basename,
// truncated at the first occurrence of filenameSep when given. File
// names usually carry the sample name as their first field.
func columnNameFor(path, filenameSep string) string {
	name := filepath.Base(path)
	if filenameSep != "" {
		name, _, _ = strings.Cut(name, filenameSep)
	}
	return name
}

func init() {
	joinCmd.Flags().IntVarP(&joinValueIdx, "value-col", "j", 2,
		"1-indexed column to take values from in each file")
	joinCmd.Flags().StringVar(&joinFilenameSep, "filename-sep", "",
		"separator in file names; the column name is the part before it")
	joinCmd.Flags().StringVarP(&joinMissing, "missing-value", "m", "",
		"string used for keys missing from a file")
	rootCmd.AddCommand(joinCmd)
}
