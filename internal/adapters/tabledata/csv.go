package tabledata

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// CSVWriter implements ports.TableWriter with a header row and no index column.
type CSVWriter struct{}

// NewCSVWriter creates a CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write replaces path with the table encoded as UTF-8 CSV.
func (w *CSVWriter) Write(ctx context.Context, path string, table domain.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create CSV file", goerr.V("path", path))
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(table.Header); err != nil {
		return goerr.Wrap(err, "failed to write CSV header", goerr.V("path", path))
	}
	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "CSV write cancelled")
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("path", path))
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV", goerr.V("path", path))
	}
	return f.Close()
}
