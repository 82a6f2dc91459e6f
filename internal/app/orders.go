package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newOrdersCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your purchase orders as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := client.ListOrdersRaw()
			if err != nil {
				return fmt.Errorf("fetching orders: %w", err)
			}
			pretty, err := indentJSON(raw)
			if err != nil {
				return fmt.Errorf("formatting orders: %w", err)
			}
			if output != "" {
				if err := os.WriteFile(output, pretty, 0600); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				ok("Saved orders to %s", output)
				return nil
			}
			fmt.Println(string(pretty))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Write the order list to this file instead of stdout")
	return cmd
}

func indentJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
