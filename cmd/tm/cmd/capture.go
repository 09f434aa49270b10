package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	capturePattern string
	captureCol     string
	captureHeader  string
)

var captureCmd = &cobra.Command{
	Use:   "capture [file]",
	Short: "Extract regex matches into a new first column",
	Long: `Extract every match of a pattern into a new first column, matches
joined by ";". The search runs over one column with --col-idx, or over
the whole row otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Capture{
			Pattern: capturePattern,
			Column:  captureCol,
			Header:  captureHeader,
		})
	},
}

func init() {
	captureCmd.Flags().StringVarP(&capturePattern, "pattern", "p", "",
		"regular expression to extract")
	captureCmd.Flags().StringVarP(&captureCol, "col-idx", "i", "",
		"column index (1-indexed) or name to restrict the search to")
	captureCmd.Flags().StringVar(&captureHeader, "new-header", "captured",
		"header name for the capture column")
	captureCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(captureCmd)
}
