package scraper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pdfharvest/internal/adapters/extractor"
	"pdfharvest/internal/mocks"
)

func TestPageScraper_PDFLinks(t *testing.T) {
	links := extractor.NewPDFLinkExtractor("anexo", slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("extracts links from fetched page", func(t *testing.T) {
		client := &mocks.MockHTTPClient{}
		client.On("FetchHTML", mock.Anything, "http://x.com/page").Return(
			`<html><body>
				<a href="Anexo_I.pdf">I</a>
				<p><a href="/files/anexo_II.pdf">II</a></p>
				<a href="other.pdf">other</a>
			</body></html>`, nil)

		s := NewPageScraper(client, links)
		got, err := s.PDFLinks(context.Background(), "http://x.com/page")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://x.com/Anexo_I.pdf",
			"http://x.com/files/anexo_II.pdf",
		}, got)
		client.AssertExpectations(t)
	})

	t.Run("fetch error is returned", func(t *testing.T) {
		client := &mocks.MockHTTPClient{}
		fetchErr := errors.New("connection refused")
		client.On("FetchHTML", mock.Anything, "http://x.com/page").Return("", fetchErr)

		s := NewPageScraper(client, links)
		got, err := s.PDFLinks(context.Background(), "http://x.com/page")

		assert.ErrorIs(t, err, fetchErr)
		assert.Empty(t, got)
	})
}
