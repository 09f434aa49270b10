package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Flip the table so rows become columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Transpose{})
	},
}

func init() {
	rootCmd.AddCommand(transposeCmd)
}
