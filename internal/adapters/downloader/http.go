package downloader

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

const (
	chunkSize = 32 * 1024
	// maxPrealloc caps the buffer reserved from a declared Content-Length.
	maxPrealloc = 8 << 20
)

// HTTPDownloader implements ports.Downloader using standard HTTP.
type HTTPDownloader struct {
	client *http.Client
}

// NewHTTPDownloader creates a new HTTPDownloader.
func NewHTTPDownloader(timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Download fetches the file at fileURL and returns its full payload.
// The body is consumed in fixed-size chunks.
func (d *HTTPDownloader) Download(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", fileURL))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file", goerr.V("url", fileURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, goerr.Wrap(domain.ErrUnexpectedStatus, "failed to download file",
			goerr.V("url", fileURL), goerr.V("status", resp.StatusCode))
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(min(resp.ContentLength, maxPrealloc)))
	}
	if _, err := io.CopyBuffer(&buf, resp.Body, make([]byte, chunkSize)); err != nil {
		return nil, goerr.Wrap(err, "failed to read file body", goerr.V("url", fileURL))
	}
	return buf.Bytes(), nil
}
