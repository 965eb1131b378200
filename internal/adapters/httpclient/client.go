package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// DefaultTimeout bounds a single page request.
const DefaultTimeout = 10 * time.Second

// Client implements ports.HTTPClient using standard HTTP.
type Client struct {
	client *http.Client
}

// NewClient creates a Client. A zero timeout selects DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchHTML performs one GET request and returns the body as text.
func (c *Client) FetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch page", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", goerr.Wrap(domain.ErrUnexpectedStatus, "failed to fetch page",
			goerr.V("url", url), goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}
	return string(body), nil
}
