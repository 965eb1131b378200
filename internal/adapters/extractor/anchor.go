package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"
)

const pdfSuffix = ".pdf"

// AnchorStrategy selects PDF links from <a href> attributes.
type AnchorStrategy struct {
	keyword string
}

// NewAnchorStrategy creates an AnchorStrategy filtering on keyword.
func NewAnchorStrategy(keyword string) *AnchorStrategy {
	return &AnchorStrategy{keyword: strings.ToLower(keyword)}
}

// Extract returns every anchor href that mentions .pdf and the keyword,
// resolved against baseURL.
func (s *AnchorStrategy) Extract(doc *goquery.Document, baseURL string) (map[string]struct{}, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid base URL", goerr.V("base_url", baseURL))
	}

	links := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		lower := strings.ToLower(href)
		if !strings.Contains(lower, pdfSuffix) || !strings.Contains(lower, s.keyword) {
			return
		}
		if abs, ok := resolve(base, href); ok {
			links[abs] = struct{}{}
		}
	})
	return links, nil
}

// resolve turns href into an absolute URL. Hrefs that fail to parse are
// reported as not ok and skipped by callers.
func resolve(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
