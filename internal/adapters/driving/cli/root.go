// Package cli implements the guessencoding command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitpan/Text-GuessEncoding/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "guessencoding",
	Short: "Classify and salvage text of uncertain encoding",
	Long: `guessencoding classifies a byte stream as ASCII, valid UTF-8, Latin-1
or a mixture thereof, and transliterates non-ASCII text into a readable
ASCII or canonical UTF-8 approximation.

Meant for salvaging text of uncertain or inconsistent encoding (legacy
mail, logs, document pipelines) where no declared charset is trustworthy.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic messages to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
