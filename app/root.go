// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "govideohub",
	Short: "GoVideoHub is a self-hosted video platform server",
	Long: `GoVideoHub is a self-hosted video platform server. It serves the
instance configuration and runtime settings over a REST API and keeps the
configuration reloadable without a restart.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
