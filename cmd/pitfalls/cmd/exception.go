package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/pitfalls/demo"
)

var exceptionCmd = &cobra.Command{
	Use:   "exception",
	Short: "Error taxonomy and propagation patterns",
	Long: `Walks through errors a caller must acknowledge (a missing notes file,
an age below the minimum, a duplicate name) and programming errors that
panic (division by zero) with three call-site policies: let it panic,
validate and panic with a clear error, or validate and use a default.

The notes file defaults to notes.txt in the working directory.`,
	Args: cobra.NoArgs,
	RunE: runException,
}

func init() {
	rootCmd.AddCommand(exceptionCmd)
}

func runException(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return demo.Exception(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
}
