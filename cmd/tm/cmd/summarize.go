package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	summarizeCols string
	summarizeTopN int
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Report the most frequent values per column (to stderr)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Summarize{Columns: summarizeCols, TopN: summarizeTopN})
	},
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeCols, "cols-to-summarize", "i", "",
		"comma-separated column indices (1-indexed) or names; \"all\" summarizes every column")
	summarizeCmd.Flags().IntVarP(&summarizeTopN, "top-n", "n", 5,
		"number of top frequent values to list")
	summarizeCmd.MarkFlagRequired("cols-to-summarize")
	rootCmd.AddCommand(summarizeCmd)
}
