package extractor

import (
	"log/slog"
	"sort"

	"github.com/PuerkitoBio/goquery"

	"pdfharvest/internal/core/ports"
)

// Composite unions the results of several extraction strategies.
type Composite struct {
	strategies []ports.ExtractionStrategy
	logger     *slog.Logger
}

// NewComposite creates a Composite over the given strategies.
func NewComposite(logger *slog.Logger, strategies ...ports.ExtractionStrategy) *Composite {
	return &Composite{strategies: strategies, logger: logger}
}

// NewPDFLinkExtractor returns the anchor + paragraph composite for keyword.
func NewPDFLinkExtractor(keyword string, logger *slog.Logger) *Composite {
	return NewComposite(logger,
		NewAnchorStrategy(keyword),
		NewParagraphStrategy(keyword),
	)
}

// Extract returns the deduplicated union of all strategy results, sorted.
// A failing strategy contributes nothing; the others still count.
func (c *Composite) Extract(doc *goquery.Document, baseURL string) []string {
	union := make(map[string]struct{})
	for _, s := range c.strategies {
		links, err := s.Extract(doc, baseURL)
		if err != nil {
			c.logger.Warn("link extraction strategy failed",
				"strategy", strategyName(s),
				"error", err,
			)
			continue
		}
		for link := range links {
			union[link] = struct{}{}
		}
	}

	result := make([]string, 0, len(union))
	for link := range union {
		result = append(result, link)
	}
	sort.Strings(result)
	return result
}

func strategyName(s ports.ExtractionStrategy) string {
	switch s.(type) {
	case *AnchorStrategy:
		return "anchor"
	case *ParagraphStrategy:
		return "paragraph"
	default:
		return "custom"
	}
}
