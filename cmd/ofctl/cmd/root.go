// Package cmd implements the ofctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/offer-finder/internal/api/client"
)

var (
	cfgFile string
	rootCmd = newRootCmd()
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ofctl",
		Short: "CLI client for Offer Finder",
		Long: "ofctl is a command-line client for the Offer Finder API.\n" +
			"It lets you manage wishlist items, set your delivery location,\n" +
			"search other stores, and maintain store shipping rules.",
		SilenceUsage: true,
	}

	root.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.ofctl.yaml)")
	root.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	root.PersistentFlags().
		String("user", "", "shopper id sent as X-User-ID")
	root.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", root.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("user", root.PersistentFlags().Lookup("user")))
	cobra.CheckErr(viper.BindPFlag("output", root.PersistentFlags().Lookup("output")))

	root.AddCommand(
		itemsCmd(),
		findCmd(),
		locationCmd(),
		storesCmd(),
		reasonsCmd(),
		quotaCmd(),
	)

	return root
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ofctl")
	}

	viper.SetEnvPrefix("OFCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"), apiclient.WithUserID(viper.GetString("user")))
}

// newUserClient is newClient for commands scoped to a shopper.
func newUserClient() (*apiclient.Client, error) {
	if viper.GetString("user") == "" {
		return nil, fmt.Errorf("--user (or OFCTL_USER) is required")
	}
	return newClient(), nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
