package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	sortBy   string
	sortDesc bool
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort rows by one or more key columns (stable string sort)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Sort{By: sortBy, Descending: sortDesc})
	},
}

func init() {
	sortCmd.Flags().StringVarP(&sortBy, "by", "i", "",
		"comma-separated column indices (1-indexed) or names to sort by")
	sortCmd.Flags().BoolVar(&sortDesc, "desc", false,
		"sort in descending order")
	sortCmd.MarkFlagRequired("by")
	rootCmd.AddCommand(sortCmd)
}
