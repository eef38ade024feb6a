package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/offer-finder/internal/api/client"
)

func itemsCmd() *cobra.Command {
	itemsRoot := &cobra.Command{
		Use:   "items",
		Short: "Manage wishlist items",
		Long: "Manage the wishlist items saved for the current shopper. Every\n" +
			"items command needs --user (or OFCTL_USER).",
	}

	itemsRoot.AddCommand(
		itemsListCmd(),
		itemsGetCmd(),
		itemsAddCmd(),
		itemsDeleteCmd(),
	)

	return itemsRoot
}

func itemsListCmd() *cobra.Command {
	var params apiclient.ListItemsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wishlist items",
		Example: `  ofctl items list --user u1
  ofctl items list --user u1 --search headphones --order-by price
  ofctl items list --user u1 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newUserClient()
			if err != nil {
				return err
			}
			resp, err := c.ListItems(cmd.Context(), &params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(out, "No items found.")
				return nil
			}
			if err := printItemTable(out, resp.Items); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nShowing %d of %d items.\n", len(resp.Items), resp.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Search, "search", "", "filter by title substring")
	cmd.Flags().StringVar(&params.Domain, "domain", "", "filter by store domain")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort by created_at, price, or title")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "max items to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "items to skip")

	return cmd
}

func itemsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show item details",
		Example: `  ofctl items get 7d0c... --user u1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newUserClient()
			if err != nil {
				return err
			}
			it, err := c.GetItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), it)
			}
			return printItemDetail(cmd.OutOrStdout(), it)
		},
	}
}

func itemsAddCmd() *cobra.Command {
	var (
		item  apiclient.NewItem
		price float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a wishlist item",
		Long: "Save a wishlist item. Price, currency, URL, and domain describe the\n" +
			"store the item was found in; when all are set that store is kept\n" +
			"as an offer in other-store searches.",
		Example: `  ofctl items add --user u1 --title "Sony WH-1000XM5"
  ofctl items add --user u1 --title "Sony WH-1000XM5" \
    --price 349.99 --currency USD --url https://www.bestbuy.com/p/123 \
    --store "Best Buy" --domain bestbuy.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if item.Title == "" {
				return fmt.Errorf("--title is required")
			}
			if cmd.Flags().Changed("price") {
				item.Price = &price
			}
			c, err := newUserClient()
			if err != nil {
				return err
			}
			created, err := c.CreateItem(cmd.Context(), &item)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item saved: %s (%s)\n", created.Title, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&item.Title, "title", "", "item title")
	cmd.Flags().Float64Var(&price, "price", 0, "price in the original store")
	cmd.Flags().StringVar(&item.Currency, "currency", "", "ISO 4217 currency of --price")
	cmd.Flags().StringVar(&item.URL, "url", "", "product page URL")
	cmd.Flags().StringVar(&item.StoreName, "store", "", "original store name")
	cmd.Flags().StringVar(&item.Domain, "domain", "", "original store domain")

	return cmd
}

func itemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a wishlist item",
		Example: `  ofctl items delete 7d0c... --user u1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newUserClient()
			if err != nil {
				return err
			}
			if err := c.DeleteItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %s deleted.\n", args[0])
			return nil
		},
	}
}
