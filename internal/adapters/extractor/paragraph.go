package extractor

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"
)

var hrefPattern = regexp.MustCompile(`(?i)href=['"]?([^'" >]+\.pdf)`)

// ParagraphStrategy finds PDF hrefs embedded in the markup of <p> elements,
// covering pages that place links inside paragraph HTML the anchor scan misses.
type ParagraphStrategy struct {
	keyword string
}

// NewParagraphStrategy creates a ParagraphStrategy filtering on keyword.
func NewParagraphStrategy(keyword string) *ParagraphStrategy {
	return &ParagraphStrategy{keyword: strings.ToLower(keyword)}
}

// Extract scans the serialized HTML of each paragraph for href values ending
// in .pdf that contain the keyword.
func (s *ParagraphStrategy) Extract(doc *goquery.Document, baseURL string) (map[string]struct{}, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid base URL", goerr.V("base_url", baseURL))
	}

	links := make(map[string]struct{})
	var renderErr error
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		raw, err := goquery.OuterHtml(p)
		if err != nil {
			if renderErr == nil {
				renderErr = goerr.Wrap(err, "failed to render paragraph")
			}
			return
		}
		for _, m := range hrefPattern.FindAllStringSubmatch(raw, -1) {
			href := html.UnescapeString(m[1])
			if !strings.Contains(strings.ToLower(href), s.keyword) {
				continue
			}
			if abs, ok := resolve(base, href); ok {
				links[abs] = struct{}{}
			}
		}
	})
	return links, renderErr
}
