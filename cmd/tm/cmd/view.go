package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/tm/ops"
)

var (
	viewMaxRows int
	viewMaxCols int
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Render the table with row numbers for human inspection",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.View{MaxRows: viewMaxRows, MaxCols: viewMaxCols})
	},
}

var viewHeaderCmd = &cobra.Command{
	Use:   "viewheader [file]",
	Short: "List every column name and its 1-indexed position",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(args, &ops.ViewHeader{})
	},
}

func init() {
	viewCmd.Flags().IntVar(&viewMaxRows, "max-rows", 20,
		"maximum number of rows to display")
	viewCmd.Flags().IntVar(&viewMaxCols, "max-cols", 0,
		"maximum number of columns to display; 0 means all")
	rootCmd.AddCommand(viewCmd, viewHeaderCmd)
}
