package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/ports"
)

// PageScraper implements ports.Scraper by fetching a page and running a
// link extractor over it.
type PageScraper struct {
	client    ports.HTTPClient
	extractor ports.LinkExtractor
}

// NewPageScraper creates a new PageScraper.
func NewPageScraper(client ports.HTTPClient, extractor ports.LinkExtractor) *PageScraper {
	return &PageScraper{client: client, extractor: extractor}
}

// PDFLinks returns the absolute PDF URLs found on pageURL. Fetch and parse
// failures are returned; deciding whether they are fatal is up to the caller.
func (s *PageScraper) PDFLinks(ctx context.Context, pageURL string) ([]string, error) {
	html, err := s.client.FetchHTML(ctx, pageURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get PDF links", goerr.V("url", pageURL))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse HTML", goerr.V("url", pageURL))
	}

	return s.extractor.Extract(doc, pageURL), nil
}
