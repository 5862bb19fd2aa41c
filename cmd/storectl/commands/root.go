package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	timeout time.Duration
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Operational tooling for the store backend",
	Long: `storectl runs maintenance tasks against the store backend outside of the API server.

Commands:
  migrate       Create or update the database schema
  logs filter   Extract the log lines of one day from a log file`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Upper bound for the whole command")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
