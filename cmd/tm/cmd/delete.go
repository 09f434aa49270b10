package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var deleteCols string

var deleteCmd = &cobra.Command{
	Use:   "delete [file]",
	Short: "Delete one or more columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Delete{Columns: deleteCols})
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteCols, "cols-to-delete", "i", "",
		"comma-separated column indices (1-indexed) or names; \"all\" deletes every column")
	deleteCmd.MarkFlagRequired("cols-to-delete")
	rootCmd.AddCommand(deleteCmd)
}
