package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/srtran/srtran/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtran",
	Short: "Contextual SRT subtitle translator powered by LLMs",
	Long: `Srtran translates SRT subtitle files between languages using large
language models.

A context subtitle file in the target language grounds every prompt with
a style and terminology guide plus a window of nearby entries, keeping
translations consistent across a whole file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys may live in a local .env file
		_ = godotenv.Load()
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
