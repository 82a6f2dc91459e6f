package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobyv/fanbookctl/internal/catalog"
	"github.com/tobyv/fanbookctl/internal/fanatical"
)

func newBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "Extract book bundles from your orders into the local catalog",
		Long: `Fetches every order's detail, extracts the downloadable books and
comics into bundles, and merges them into the local catalog file.
Download state of bundles already in the catalog is preserved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := client.ListOrders()
			if err != nil {
				return fmt.Errorf("fetching orders: %w", err)
			}

			var details []fanatical.OrderDetail
			for _, o := range orders {
				if o.ID == "" {
					continue
				}
				detail, err := client.GetOrderDetail(o.ID)
				if err != nil {
					warn("order %s: %v", o.ID, err)
					continue
				}
				details = append(details, *detail)
			}

			incoming := catalog.Extract(details)

			cat := catalog.Load(cfg.Paths.Catalog)
			cat.Bundles = catalog.Merge(cat.Bundles, incoming)
			if err := catalog.Save(cfg.Paths.Catalog, &cat); err != nil {
				return err
			}

			ok("Updated %s: %d bundles (%d with books)", cfg.Paths.Catalog, cat.AllBundles, cat.BookBundles)
			return nil
		},
	}
}
