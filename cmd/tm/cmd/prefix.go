package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	prefixCols  string
	prefixStr   string
	prefixDelim string
)

var prefixCmd = &cobra.Command{
	Use:   "prefix_add [file]",
	Short: "Prepend a string to every value of the selected columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := decodeFlag(&prefixStr, &prefixDelim); err != nil {
			return err
		}
		return runOp(args, &ops.Prefix{Columns: prefixCols, Str: prefixStr, Delimiter: prefixDelim})
	},
}

func init() {
	prefixCmd.Flags().StringVarP(&prefixCols, "cols-to-prefix", "i", "",
		"comma-separated column indices (1-indexed) or names; \"all\" prefixes every column")
	prefixCmd.Flags().StringVarP(&prefixStr, "string", "v", "",
		"string to prepend; escape sequences are decoded")
	prefixCmd.Flags().StringVarP(&prefixDelim, "delimiter", "d", "",
		"delimiter between the prefix and the original value")
	prefixCmd.MarkFlagRequired("cols-to-prefix")
	prefixCmd.MarkFlagRequired("string")
	rootCmd.AddCommand(prefixCmd)
}
