package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/calebcase/pitfalls/config"
)

var (
	cfgFile string
	verbose bool

	logger = log.New(io.Discard, "pitfalls: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "pitfalls",
	Short: "Demonstrations of decimal arithmetic and error handling",
	Long: `pitfalls prints labeled walkthroughs of two beginner topics:

  decimal    - exact decimal construction, rounding modes, scale and
               equality versus numeric comparison
  exception  - errors that must be acknowledged versus panics, custom
               error kinds, validation versus default values`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(io.Discard)
		if verbose {
			logger.SetOutput(cmd.ErrOrStderr())
		}
	},
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}

	if cfgFile != "" {
		logger.Printf("loaded config from %s", cfgFile)
	}
	logger.Printf("notes_file=%q minimum_age=%d default_quotient=%d",
		cfg.NotesFile, cfg.MinimumAge, cfg.DefaultQuotient)

	return cfg, nil
}
