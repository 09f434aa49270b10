package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	insertAt     string
	insertValue  string
	insertHeader string
)

var insertCmd = &cobra.Command{
	Use:   "insert [file]",
	Short: "Insert a new column with a constant value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := decodeFlag(&insertValue); err != nil {
			return err
		}
		return runOp(args, &ops.Insert{At: insertAt, Value: insertValue, Header: insertHeader})
	},
}

func init() {
	insertCmd.Flags().StringVarP(&insertAt, "col-idx", "i", "",
		"column index (1-indexed) or name where the new column is inserted")
	insertCmd.Flags().StringVarP(&insertValue, "value", "v", "",
		"value for every row of the new column; escape sequences are decoded")
	insertCmd.Flags().StringVar(&insertHeader, "new-header", "new_column",
		"header name for the new column")
	insertCmd.MarkFlagRequired("col-idx")
	insertCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(insertCmd)
}
