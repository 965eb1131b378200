package tabledata

import (
	"context"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// PDFReader reads tables from a PDF's text layer. Text on the same line is
// one row; a horizontal gap wider than the font size starts a new cell.
// The first row on each page is taken as that page's header.
type PDFReader struct{}

// NewPDFReader creates a PDFReader.
func NewPDFReader() *PDFReader {
	return &PDFReader{}
}

// ReadTables returns one table per selected page that carries text.
func (r *PDFReader) ReadTables(ctx context.Context, pdfPath, pages string) (tables []domain.Table, err error) {
	// the pdf package panics on some malformed streams
	defer func() {
		if rec := recover(); rec != nil {
			tables = nil
			err = goerr.New("failed to parse PDF", goerr.V("path", pdfPath), goerr.V("panic", rec))
		}
	}()

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open PDF", goerr.V("path", pdfPath))
	}
	defer f.Close()

	selected, err := parsePages(pages, reader.NumPage())
	if err != nil {
		return nil, err
	}

	for _, n := range selected {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "table extraction cancelled")
		}

		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read page text", goerr.V("page", n))
		}

		var cells [][]string
		for _, row := range rows {
			if line := splitCells(row.Content); len(line) > 0 {
				cells = append(cells, line)
			}
		}
		if len(cells) == 0 {
			continue
		}
		tables = append(tables, domain.Table{Header: cells[0], Rows: cells[1:]})
	}
	return tables, nil
}

// splitCells groups positioned text fragments of one line into cells.
func splitCells(texts pdf.TextHorizontal) []string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var (
		cells   []string
		current strings.Builder
		prevEnd float64
	)
	flush := func() {
		if cell := strings.TrimSpace(current.String()); cell != "" {
			cells = append(cells, cell)
		}
		current.Reset()
	}

	for i, t := range sorted {
		gap := t.FontSize
		if gap <= 0 {
			gap = 1
		}
		if i > 0 && t.X-prevEnd > gap {
			flush()
		}
		current.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	flush()
	return cells
}
