package fanatical

import (
	"encoding/json"
	"fmt"
)

// OrderSummary is one entry in the account's order list. The API returns
// many more fields; only the ones the tool acts on are decoded.
type OrderSummary struct {
	ID   string `json:"_id"`
	Date string `json:"date"`
}

// OrderDetail is the full detail document for a single order.
type OrderDetail struct {
	ID    string `json:"_id"`
	Date  string `json:"date"`
	Items []Item `json:"items"`
}

// Item is one line item of an order. Items are recursive: a top-level
// item may itself be a book, or carry nested bundles whose games are
// books.
type Item struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	Type       string          `json:"type"`
	DRM        json.RawMessage `json:"drm,omitempty"`
	Cover      string          `json:"cover"`
	PickAndMix string          `json:"pickAndMix,omitempty"`
	Payment    Payment         `json:"payment"`
	Bundles    []ItemBundle    `json:"bundles,omitempty"`
	Downloads  []ItemDownload  `json:"downloads,omitempty"`
}

// Payment holds what was paid for one item.
type Payment struct {
	Total float64 `json:"total"`
}

// ItemBundle is a nested grouping of purchasable entries inside an item.
type ItemBundle struct {
	Games []Item `json:"games"`
}

// ItemDownload groups the downloadable files of a book.
type ItemDownload struct {
	Files []FileRaw `json:"files"`
}

// FileRaw is one downloadable file as the API reports it.
type FileRaw struct {
	ID     string `json:"_id"`
	Format string `json:"format"`
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	MD5    string `json:"md5"`
}

// ListOrdersRaw fetches the account's order list as raw JSON bytes.
func (c *Client) ListOrdersRaw() ([]byte, error) {
	return c.getRaw(c.url("user", "orders"))
}

// ListOrders fetches and decodes the account's order list.
func (c *Client) ListOrders() ([]OrderSummary, error) {
	data, err := c.ListOrdersRaw()
	if err != nil {
		return nil, err
	}
	var orders []OrderSummary
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decoding order list: %w", err)
	}
	return orders, nil
}

// GetOrderDetailRaw fetches one order's detail document as raw JSON bytes.
func (c *Client) GetOrderDetailRaw(orderID string) ([]byte, error) {
	return c.getRaw(c.url("user", "orders", orderID))
}

// GetOrderDetail fetches and decodes one order's detail document.
func (c *Client) GetOrderDetail(orderID string) (*OrderDetail, error) {
	var detail OrderDetail
	if err := c.getJSON(c.url("user", "orders", orderID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
