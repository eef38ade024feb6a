package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/offer-finder/internal/api/client"
)

func findCmd() *cobra.Command {
	findRoot := &cobra.Command{
		Use:   "find",
		Short: "Search other stores for an item",
		Long: "Ask the offer source for other stores selling an item and filter\n" +
			"them by the stores' shipping rules for a delivery location.",
	}

	findRoot.AddCommand(
		findOtherStoresCmd(),
		findAlternativesCmd(),
	)

	return findRoot
}

func findOtherStoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "other-stores <item-id>",
		Short: "Find stores that deliver a saved item to you",
		Long: "Find other stores for a saved wishlist item, keeping only the ones\n" +
			"that ship to the location stored for --user. Offers are ranked by\n" +
			"price in your preferred currency.",
		Example: `  ofctl find other-stores 7d0c... --user u1
  ofctl find other-stores 7d0c... --user u1 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newUserClient()
			if err != nil {
				return err
			}
			res, err := c.FindOtherStores(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printOtherStores(cmd.OutOrStdout(), res)
		},
	}
}

func findAlternativesCmd() *cobra.Command {
	var (
		req   apiclient.AlternativesRequest
		price float64
	)

	cmd := &cobra.Command{
		Use:   "alternatives",
		Short: "Find alternatives for an unsaved product",
		Long: "Find offers for a product that is not on a wishlist. Every offer is\n" +
			"returned and tagged available or unavailable for --country and\n" +
			"--city. Without --country nothing is checked.",
		Example: `  ofctl find alternatives --title "Kindle Paperwhite" --country DE
  ofctl find alternatives --title "Kindle Paperwhite" --country US --city Austin \
    --sort fastest_shipping`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Title == "" {
				return fmt.Errorf("--title is required")
			}
			if cmd.Flags().Changed("price") {
				req.Price = &price
			}
			offers, err := newClient().FindAlternatives(cmd.Context(), &req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, offers)
			}
			if len(offers) == 0 {
				fmt.Fprintln(out, "No offers found.")
				return nil
			}
			return printAlternatives(out, offers)
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "product title")
	cmd.Flags().StringVar(&req.OriginalURL, "url", "", "product page the search starts from")
	cmd.Flags().Float64Var(&price, "price", 0, "price seen on --url")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "ISO 4217 currency of --price")
	cmd.Flags().StringVar(&req.CountryCode, "country", "", "ISO 3166-1 alpha-2 delivery country")
	cmd.Flags().StringVar(&req.City, "city", "", "delivery city")
	cmd.Flags().StringVar(&req.Sort, "sort", "", "lowest_price, fastest_shipping, or newest")

	return cmd
}
