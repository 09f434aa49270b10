package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	splitCol    string
	splitDelim  string
	splitPrefix string
)

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a column by a delimiter into multiple new columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := decodeFlag(&splitDelim); err != nil {
			return err
		}
		return runOp(args, &ops.Split{Column: splitCol, Delimiter: splitDelim, HeaderPrefix: splitPrefix})
	},
}

func init() {
	splitCmd.Flags().StringVarP(&splitCol, "col-idx", "i", "",
		"column index (1-indexed) or name to split")
	splitCmd.Flags().StringVarP(&splitDelim, "delimiter", "d", "",
		"literal delimiter to split on; escape sequences are decoded")
	splitCmd.Flags().StringVar(&splitPrefix, "new-header-prefix", "split_col",
		"prefix for the new column names (split_col_1, split_col_2, ...)")
	splitCmd.MarkFlagRequired("col-idx")
	splitCmd.MarkFlagRequired("delimiter")
	rootCmd.AddCommand(splitCmd)
}
