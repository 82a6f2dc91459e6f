package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newDetailsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "details",
		Short: "Fetch and save the full detail of every order",
		Long: `Fetches the detail document of every order on the account and saves
them as one JSON array. Orders whose detail cannot be fetched are
skipped with a warning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := client.ListOrders()
			if err != nil {
				return fmt.Errorf("fetching orders: %w", err)
			}

			details := make([]json.RawMessage, 0, len(orders))
			for _, o := range orders {
				if o.ID == "" {
					continue
				}
				raw, err := client.GetOrderDetailRaw(o.ID)
				if err != nil {
					warn("order %s: %v", o.ID, err)
					continue
				}
				details = append(details, raw)
			}

			data, err := json.MarshalIndent(details, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding details: %w", err)
			}
			path := output
			if path == "" {
				path = cfg.Paths.Details
			}
			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			ok("Saved %d order details to %s", len(details), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Write order details to this file (default: configured details path)")
	return cmd
}
