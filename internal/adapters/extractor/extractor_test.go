package extractor

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestAnchorStrategy_Extract(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		html     string
		expected []string
	}{
		{
			name:    "matching anchors only",
			keyword: "anexo",
			html: `<html><body>
				<a href="anexo_1.pdf">one</a>
				<a href="/files/Anexo_2.PDF">two</a>
				<a href="other.pdf">no keyword</a>
				<a href="anexo.html">not a pdf</a>
				<a>no href</a>
			</body></html>`,
			expected: []string{
				"http://x.com/docs/anexo_1.pdf",
				"http://x.com/files/Anexo_2.PDF",
			},
		},
		{
			name:     "keyword is case-insensitive",
			keyword:  "ANEXO",
			html:     `<a href="anexo_1.pdf">x</a>`,
			expected: []string{"http://x.com/docs/anexo_1.pdf"},
		},
		{
			name:     "absolute href passes through",
			keyword:  "anexo",
			html:     `<a href="https://cdn.example.org/anexo.pdf">x</a>`,
			expected: []string{"https://cdn.example.org/anexo.pdf"},
		},
		{
			name:     "substring keyword match",
			keyword:  "doc",
			html:     `<a href="doc2.pdf">a</a><a href="introduction.pdf">b</a><a href="paper.pdf">c</a>`,
			expected: []string{"http://x.com/docs/doc2.pdf"},
		},
		{
			name:     "malformed href is skipped",
			keyword:  "anexo",
			html:     `<a href="%zz_anexo.pdf">bad</a><a href="anexo.pdf">ok</a>`,
			expected: []string{"http://x.com/docs/anexo.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAnchorStrategy(tt.keyword)
			links, err := s.Extract(parse(t, tt.html), "http://x.com/docs/index.html")
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, keys(links))
		})
	}
}

func TestAnchorStrategy_ResolvesAgainstBase(t *testing.T) {
	s := NewAnchorStrategy("doc")
	links, err := s.Extract(parse(t, `<a href="doc.pdf">d</a>`), "http://x.com/")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x.com/doc.pdf"}, keys(links))
}

func TestParagraphStrategy_Extract(t *testing.T) {
	html := `<html><body>
		<p>See <a href='anexo_3.pdf'>annex</a> and <a href="/abs/Anexo_4.pdf">more</a></p>
		<p>Unrelated <a href="report.pdf">r</a></p>
		<div><a href="anexo_5.pdf">outside paragraph</a></div>
	</body></html>`

	s := NewParagraphStrategy("ANEXO")
	links, err := s.Extract(parse(t, html), "http://x.com/docs/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"http://x.com/docs/anexo_3.pdf",
		"http://x.com/abs/Anexo_4.pdf",
	}, keys(links))
}

func TestParagraphStrategy_UnescapesAttributes(t *testing.T) {
	s := NewParagraphStrategy("anexo")
	links, err := s.Extract(parse(t, `<p><a href="a&amp;b_anexo.pdf">x</a></p>`), "http://x.com/")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x.com/a&b_anexo.pdf"}, keys(links))
}

func TestComposite_DeduplicatesUnion(t *testing.T) {
	html := `<html><body>
		<p><a href="anexo_1.pdf">same link in a paragraph</a></p>
		<a href="anexo_2.pdf">anchor only</a>
	</body></html>`

	c := NewPDFLinkExtractor("anexo", slog.New(slog.NewTextHandler(io.Discard, nil)))
	links := c.Extract(parse(t, html), "http://x.com/")

	assert.Equal(t, []string{
		"http://x.com/anexo_1.pdf",
		"http://x.com/anexo_2.pdf",
	}, links)
}

func TestComposite_InvalidBaseURL(t *testing.T) {
	c := NewPDFLinkExtractor("anexo", slog.New(slog.NewTextHandler(io.Discard, nil)))
	links := c.Extract(parse(t, `<a href="anexo.pdf">x</a>`), "http://bad host/")
	assert.Empty(t, links)
}

func TestComposite_NoLinks(t *testing.T) {
	c := NewPDFLinkExtractor("anexo", slog.New(slog.NewTextHandler(io.Discard, nil)))
	links := c.Extract(parse(t, `<html><body><p>nothing here</p></body></html>`), "http://x.com/")
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
