// Package cmd implements the CLI commands for offer-finder.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "offer-finder",
	Short: "Find where a wishlist item can be bought and delivered",
	Long: "An API-first service that asks an LLM for candidate offers on a wishlist item, " +
		"checks each store's shipping rules against the user's location, and ranks the " +
		"offers that can actually be delivered.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
