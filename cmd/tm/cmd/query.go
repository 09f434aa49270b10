package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	queryCol        string
	queryPattern    string
	queryStartsWith string
	queryEndsWith   string
)

var queryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Keep rows whose column matches a pattern, prefix, or suffix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.Query{
			Column:     queryCol,
			Pattern:    queryPattern,
			StartsWith: queryStartsWith,
			EndsWith:   queryEndsWith,
		})
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryCol, "col-idx", "i", "",
		"column index (1-indexed) or name to query")
	queryCmd.Flags().StringVarP(&queryPattern, "pattern", "p", "",
		"regular expression to search for")
	queryCmd.Flags().StringVar(&queryStartsWith, "starts-with", "",
		"keep rows whose value starts with this string")
	queryCmd.Flags().StringVar(&queryEndsWith, "ends-with", "",
		"keep rows whose value ends with this string")
	queryCmd.MarkFlagRequired("col-idx")
	queryCmd.MarkFlagsOneRequired("pattern", "starts-with", "ends-with")
	queryCmd.MarkFlagsMutuallyExclusive("pattern", "starts-with", "ends-with")
	rootCmd.AddCommand(queryCmd)
}
