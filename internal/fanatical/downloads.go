package fanatical

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

type signedURLResponse struct {
	SignedGetURL string `json:"signedGetUrl"`
}

// SignedURL exchanges a file's API download URL for a time-limited
// signed URL on the storefront's CDN.
func (c *Client) SignedURL(apiDownloadURL string) (string, error) {
	var out signedURLResponse
	if err := c.getJSON(apiDownloadURL, &out); err != nil {
		return "", err
	}
	if out.SignedGetURL == "" {
		return "", fmt.Errorf("no signed URL in response for %s", apiDownloadURL)
	}
	return out.SignedGetURL, nil
}

// Stream opens the resource behind a signed URL for reading. The signed
// URL is the credential, so no bearer token is sent to the CDN host.
// Caller is responsible for closing the returned ReadCloser.
func (c *Client) Stream(signedURL string) (io.ReadCloser, int64, error) {
	client := &http.Client{Timeout: 5 * time.Minute}
	req, err := http.NewRequest(http.MethodGet, signedURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, 0, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, resp.ContentLength, nil
}
