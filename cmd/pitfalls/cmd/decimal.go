package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/pitfalls/demo"
)

var decimalCmd = &cobra.Command{
	Use:   "decimal",
	Short: "Exact decimal construction, rounding and comparison",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.Decimal(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(decimalCmd)
}
