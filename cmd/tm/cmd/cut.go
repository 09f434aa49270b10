package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	cutPattern string
	cutRegex   bool
)

var cutCmd = &cobra.Command{
	Use:   "cut [file]",
	Short: "Keep only the columns whose name matches a pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Cut{Pattern: cutPattern, Regex: cutRegex})
	},
}

func init() {
	cutCmd.Flags().StringVarP(&cutPattern, "pattern", "p", "",
		"literal substring (or regular expression with --regex) to match column names")
	cutCmd.Flags().BoolVar(&cutRegex, "regex", false,
		"treat the pattern as a regular expression")
	cutCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(cutCmd)
}
