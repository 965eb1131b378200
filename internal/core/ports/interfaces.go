package ports

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"pdfharvest/internal/core/domain"
)

// HTTPClient defines the contract for fetching page HTML.
type HTTPClient interface {
	// FetchHTML performs a single GET and returns the response body as text.
	FetchHTML(ctx context.Context, url string) (string, error)
}

// ExtractionStrategy finds PDF links in a parsed page.
type ExtractionStrategy interface {
	// Extract returns the set of absolute PDF URLs found in doc.
	Extract(doc *goquery.Document, baseURL string) (map[string]struct{}, error)
}

// LinkExtractor turns a parsed page into a list of absolute PDF URLs.
type LinkExtractor interface {
	Extract(doc *goquery.Document, baseURL string) []string
}

// Scraper defines the contract for listing PDF links on a page.
type Scraper interface {
	PDFLinks(ctx context.Context, pageURL string) ([]string, error)
}

// Downloader defines the contract for downloading a file's bytes.
type Downloader interface {
	Download(ctx context.Context, fileURL string) ([]byte, error)
}

// Saver defines the contract for persisting downloaded bytes.
type Saver interface {
	// Save writes data under filename and returns the resulting path.
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// FileManager downloads a URL and saves it locally.
type FileManager interface {
	SaveFile(ctx context.Context, fileURL string) (string, error)
}

// Compressor defines the contract for archiving files of a directory.
type Compressor interface {
	// CreateZip writes every file with the given extension into archiveName.
	CreateZip(ctx context.Context, archiveName, extension string) (*domain.Archive, error)
}

// Remover deletes source files after archival.
type Remover interface {
	// Remove returns the number of files deleted.
	Remove(ctx context.Context) (int, error)
}

// TableReader reads tables out of a PDF document.
type TableReader interface {
	ReadTables(ctx context.Context, pdfPath, pages string) ([]domain.Table, error)
}

// TableProcessor merges extracted tables into one.
type TableProcessor interface {
	Process(tables []domain.Table) (domain.Table, error)
}

// TableWriter persists a table at path.
type TableWriter interface {
	Write(ctx context.Context, path string, table domain.Table) error
}
