package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	groupKey     string
	groupKeepDup bool
)

var groupByCmd = &cobra.Command{
	Use:   "groupby [file]",
	Short: "Collapse rows sharing a key column into key, count, and values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.GroupBy{Key: groupKey, KeepDuplicates: groupKeepDup})
	},
}

func init() {
	groupByCmd.Flags().StringVarP(&groupKey, "key-col", "i", "1",
		"key column index (1-indexed) or name")
	groupByCmd.Flags().BoolVarP(&groupKeepDup, "keep-duplicates", "d", false,
		"retain repeated values within a group")
	rootCmd.AddCommand(groupByCmd)
}
