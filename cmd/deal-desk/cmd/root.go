// Package cmd implements the CLI commands for the deal-desk server.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	envFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "deal-desk",
	Short: "Prioritise leads and listings for a business brokerage",
	Long: "deal-desk scores buyer leads and business listings, matches buyers to\n" +
		"listings by budget fit and cash-on-cash return, and serves the broker's\n" +
		"daily focus, hot deal, and aging views over an HTTP API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before the config is expanded")

	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
