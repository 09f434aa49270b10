package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	translateCol     string
	translateDict    string
	translateFrom    string
	translateTo      string
	translateRegex   bool
	translateHeader  string
	translateInPlace bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Map values in a column via a dictionary file or a single replacement",
	Long: `Map values in a column. With --dict-file, values are replaced through a
two-column key<sep>value file; unmatched values pass through unchanged.
With --from-val/--to-val, a single replacement is applied, literal by
default or as a regular expression with --regex.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := decodeFlag(&translateFrom, &translateTo); err != nil {
			return err
		}
		return runOp(args, &ops.Translate{
			Column:   translateCol,
			DictFile: translateDict,
			FromVal:  translateFrom,
			ToVal:    translateTo,
			HasToVal: cmd.Flags().Changed("to-val"),
			Regex:    translateRegex,
			Header:   translateHeader,
			InPlace:  translateInPlace,
		})
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateCol, "col-idx", "i", "",
		"column index (1-indexed) or name to translate")
	translateCmd.Flags().StringVarP(&translateDict, "dict-file", "d", "",
		"two-column key<sep>value file used as the translation map")
	translateCmd.Flags().StringVar(&translateFrom, "from-val", "",
		"value to translate from; escape sequences are decoded")
	translateCmd.Flags().StringVar(&translateTo, "to-val", "",
		"value to translate to; escape sequences are decoded")
	translateCmd.Flags().BoolVar(&translateRegex, "regex", false,
		"treat --from-val as a regular expression")
	translateCmd.Flags().StringVar(&translateHeader, "new-header", "_translated",
		"name for the translated column; a leading _ appends to the source name")
	translateCmd.Flags().BoolVar(&translateInPlace, "in-place", false,
		"overwrite the column instead of adding a new one")
	translateCmd.MarkFlagRequired("col-idx")
	translateCmd.MarkFlagsOneRequired("dict-file", "from-val")
	translateCmd.MarkFlagsMutuallyExclusive("dict-file", "from-val")
	rootCmd.AddCommand(translateCmd)
}
