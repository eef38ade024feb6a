package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/offer-finder/internal/api/client"
)

func locationCmd() *cobra.Command {
	locRoot := &cobra.Command{
		Use:   "location",
		Short: "Show or set your delivery location",
	}

	locRoot.AddCommand(
		locationGetCmd(),
		locationSetCmd(),
	)

	return locRoot
}

func locationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get",
		Short:   "Show the stored delivery location",
		Example: `  ofctl location get --user u1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newUserClient()
			if err != nil {
				return err
			}
			loc, err := c.GetLocation(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), loc)
			}
			return printLocation(cmd.OutOrStdout(), loc)
		},
	}
}

func locationSetCmd() *cobra.Command {
	var update apiclient.LocationUpdate

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the delivery location",
		Long: "Set the delivery country, and optionally city and preferred\n" +
			"currency, used to filter other-store searches.",
		Example: `  ofctl location set --user u1 --country DE
  ofctl location set --user u1 --country US --city "New York" --currency USD`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if update.CountryCode == "" {
				return fmt.Errorf("--country is required")
			}
			c, err := newUserClient()
			if err != nil {
				return err
			}
			loc, err := c.SetLocation(cmd.Context(), &update)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), loc)
			}
			return printLocation(cmd.OutOrStdout(), loc)
		},
	}
	cmd.Flags().StringVar(&update.CountryCode, "country", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&update.City, "city", "", "city name")
	cmd.Flags().StringVar(&update.PreferredCurrency, "currency", "", "ISO 4217 display currency")

	return cmd
}
