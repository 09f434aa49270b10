package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	moveFrom string
	moveTo   string
)

var moveCmd = &cobra.Command{
	Use:   "move [file]",
	Short: "Move a column from one position to another",
	Long: `Move a column from one position to another. A destination beyond the
last column appends.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Move{From: moveFrom, To: moveTo})
	},
}

func init() {
	moveCmd.Flags().StringVarP(&moveFrom, "from-col", "i", "",
		"source column index (1-indexed) or name")
	moveCmd.Flags().StringVarP(&moveTo, "to-col", "j", "",
		"destination column index (1-indexed) or name; beyond the last column appends")
	moveCmd.MarkFlagRequired("from-col")
	moveCmd.MarkFlagRequired("to-col")
	rootCmd.AddCommand(moveCmd)
}
