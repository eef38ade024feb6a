package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/offer-finder/internal/api/client"
)

func storesCmd() *cobra.Command {
	storesRoot := &cobra.Command{
		Use:   "stores",
		Short: "Manage stores and shipping rules",
		Long: "Manage onboarded stores and their per-country shipping rules. A store\n" +
			"with no record is never offered as available.",
	}

	storesRoot.AddCommand(
		storesListCmd(),
		storesGetCmd(),
		storesPutCmd(),
		storesDeleteCmd(),
		rulesCmd(),
	)

	return storesRoot
}

func storesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stores",
		Example: `  ofctl stores list
  ofctl stores list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stores, err := newClient().ListStores(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, stores)
			}
			if len(stores) == 0 {
				fmt.Fprintln(out, "No stores found.")
				return nil
			}
			return printStoreTable(out, stores)
		},
	}
}

func storesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <domain>",
		Short:   "Show a store and its shipping rules",
		Example: `  ofctl stores get amazon.de`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().GetStore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printStoreDetail(cmd.OutOrStdout(), p)
		},
	}
}

func storesPutCmd() *cobra.Command {
	var update apiclient.StoreUpdate

	cmd := &cobra.Command{
		Use:   "put <domain>",
		Short: "Create or update a store",
		Example: `  ofctl stores put amazon.de --name "Amazon DE" --countries DE,AT
  ofctl stores put noon.com --name Noon --countries AE,SA --requires-city`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if update.Name == "" {
				return fmt.Errorf("--name is required")
			}
			s, err := newClient().PutStore(cmd.Context(), args[0], &update)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store %s saved.\n", s.Domain)
			return nil
		},
	}
	cmd.Flags().StringVar(&update.Name, "name", "", "display name")
	cmd.Flags().StringSliceVar(&update.CountriesSupported, "countries", nil, "supported country codes")
	cmd.Flags().BoolVar(&update.RequiresCity, "requires-city", false, "apply per-city rules for this store")

	return cmd
}

func storesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <domain>",
		Short:   "Delete a store and its rules",
		Example: `  ofctl stores delete amazon.de`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteStore(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store %s deleted.\n", args[0])
			return nil
		},
	}
}

func rulesCmd() *cobra.Command {
	rulesRoot := &cobra.Command{
		Use:   "rules",
		Short: "Manage per-country shipping rules",
	}

	rulesRoot.AddCommand(
		rulesPutCmd(),
		rulesDeleteCmd(),
	)

	return rulesRoot
}

func rulesPutCmd() *cobra.Command {
	var update apiclient.RuleUpdate

	cmd := &cobra.Command{
		Use:   "put <domain> <country>",
		Short: "Create or replace a shipping rule",
		Long: "Create or replace the shipping rule for one country. A blacklisted\n" +
			"city is never delivered to; a whitelisted city is delivered to even\n" +
			"when --ships-to-city is off.",
		Example: `  ofctl stores rules put noon.com AE --ships-to-country --ships-to-city
  ofctl stores rules put noon.com SA --ships-to-country \
    --whitelist Riyadh,Jeddah --blacklist Tabuk`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newClient().PutRule(cmd.Context(), args[0], args[1], &update)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule %s/%s saved.\n", r.StoreDomain, r.CountryCode)
			return nil
		},
	}
	cmd.Flags().BoolVar(&update.ShipsToCountry, "ships-to-country", false, "store ships to this country")
	cmd.Flags().BoolVar(&update.ShipsToCity, "ships-to-city", false, "store ships to every city not blacklisted")
	cmd.Flags().StringSliceVar(&update.CityWhitelist, "whitelist", nil, "cities always delivered to")
	cmd.Flags().StringSliceVar(&update.CityBlacklist, "blacklist", nil, "cities never delivered to")

	return cmd
}

func rulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <domain> <country>",
		Short:   "Delete a shipping rule",
		Example: `  ofctl stores rules delete noon.com SA`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteRule(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule %s/%s deleted.\n", args[0], args[1])
			return nil
		},
	}
}
