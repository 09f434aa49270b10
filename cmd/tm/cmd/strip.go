package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	stripCol     string
	stripPattern string
	stripHeader  string
	stripInPlace bool
)

var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Remove every match of a pattern from a column's values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Strip{
			Column:  stripCol,
			Pattern: stripPattern,
			Header:  stripHeader,
			InPlace: stripInPlace,
		})
	},
}

func init() {
	stripCmd.Flags().StringVarP(&stripCol, "col-idx", "i", "",
		"column index (1-indexed) or name to strip")
	stripCmd.Flags().StringVarP(&stripPattern, "pattern", "p", "",
		"regular expression to remove from values")
	stripCmd.Flags().StringVar(&stripHeader, "new-header", "_stripped",
		"name for the stripped column; a leading _ appends to the source name")
	stripCmd.Flags().BoolVar(&stripInPlace, "in-place", false,
		"overwrite the column instead of adding a new one")
	stripCmd.MarkFlagRequired("col-idx")
	stripCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(stripCmd)
}
