package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var cleanupDataCols string

var cleanupHeaderCmd = &cobra.Command{
	Use:   "cleanup_header [file]",
	Short: "Normalize header names (lowercase, underscores, word characters only)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.CleanupHeader{})
	},
}

var cleanupDataCmd = &cobra.Command{
	Use:   "cleanup_data [file]",
	Short: "Normalize cell values in the selected columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.CleanupData{Columns: cleanupDataCols})
	},
}

func init() {
	cleanupDataCmd.Flags().StringVarP(&cleanupDataCols, "cols-to-clean", "i", "",
		"comma-separated column indices (1-indexed) or names; \"all\" cleans every column")
	cleanupDataCmd.MarkFlagRequired("cols-to-clean")
	rootCmd.AddCommand(cleanupHeaderCmd, cleanupDataCmd)
}
