package fanatical

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIBase = "https://www.fanatical.com/api"

// The storefront rejects requests without a browser-ish user agent.
const userAgent = "Mozilla/5.0 (compatible; fanbookctl/1.0)"

// Client is an authenticated Fanatical API client.
type Client struct {
	token   string
	apiBase string
	http    *http.Client
}

// New creates a Client with the given bearer token and API base URL.
// If apiBase is empty, the public storefront API is used.
func New(token, apiBase string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	// Strip trailing slash for consistent URL building.
	apiBase = strings.TrimRight(apiBase, "/")

	return &Client{
		token:   token,
		apiBase: apiBase,
		http: &http.Client{
			Timeout: 5 * time.Minute, // generous for large book files
		},
	}
}

// do executes the request with the standard auth headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)
	return c.http.Do(req)
}

// getRaw performs an authenticated GET and returns the response body.
func (c *Client) getRaw(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

// getJSON performs an authenticated GET and decodes the JSON response into out.
func (c *Client) getJSON(url string, out interface{}) error {
	data, err := c.getRaw(url)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.apiBase + "/" + strings.Join(parts, "/")
}

// checkStatus returns a typed error for non-success responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fanatical API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
