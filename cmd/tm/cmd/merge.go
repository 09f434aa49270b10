package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	mergeCols   string
	mergeDelim  string
	mergeHeader string
	mergeTarget string
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file]",
	Short: "Merge two or more columns into one new column",
	Long: `Merge two or more columns with a delimiter into one new column,
dropping the originals. Without --target-col-idx the merged column takes
the first merged column's position.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := decodeFlag(&mergeDelim); err != nil {
			return err
		}
		return runOp(args, &ops.Merge{
			Columns:   mergeCols,
			Delimiter: mergeDelim,
			Header:    mergeHeader,
			Target:    mergeTarget,
		})
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeCols, "cols-to-merge", "i", "",
		"comma-separated column indices (1-indexed) or names to merge")
	mergeCmd.Flags().StringVarP(&mergeDelim, "delimiter", "d", "",
		"delimiter between merged values; escape sequences are decoded")
	mergeCmd.Flags().StringVar(&mergeHeader, "new-header", "merged_column",
		"header name for the merged column")
	mergeCmd.Flags().StringVarP(&mergeTarget, "target-col-idx", "j", "",
		"target column index (1-indexed) or name for the merged column")
	mergeCmd.MarkFlagRequired("cols-to-merge")
	rootCmd.AddCommand(mergeCmd)
}
