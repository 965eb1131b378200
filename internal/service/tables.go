package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
	"pdfharvest/internal/core/ports"
)

const csvExtension = ".csv"

// TableService extracts tables from one PDF, writes them as CSV and
// compresses the CSV directory.
type TableService struct {
	reader     ports.TableReader
	processor  ports.TableProcessor
	writer     ports.TableWriter
	compressor ports.Compressor
	csvDir     string
	zipName    string
	pages      string
	logger     *slog.Logger
}

// NewTableService creates a new TableService.
func NewTableService(
	reader ports.TableReader,
	processor ports.TableProcessor,
	writer ports.TableWriter,
	compressor ports.Compressor,
	csvDir, zipName, pages string,
	logger *slog.Logger,
) *TableService {
	return &TableService{
		reader:     reader,
		processor:  processor,
		writer:     writer,
		compressor: compressor,
		csvDir:     csvDir,
		zipName:    zipName,
		pages:      pages,
		logger:     logger,
	}
}

// Run processes pdfPath. The CSV is named after the PDF.
func (s *TableService) Run(ctx context.Context, pdfPath string) (*domain.TableResult, error) {
	if pdfPath == "" {
		return nil, goerr.Wrap(domain.ErrTargetNotSet, "cannot extract tables")
	}
	result := &domain.TableResult{
		PDFPath: pdfPath,
		CSVPath: filepath.Join(s.csvDir, csvName(pdfPath)),
	}
	logger := s.logger.With("pdf", filepath.Base(pdfPath))

	logger.Info("extracting tables", "pages", s.pages)
	tables, err := s.reader.ReadTables(ctx, pdfPath, s.pages)
	if err != nil {
		logger.Error("table extraction failed", "error", err)
		return nil, goerr.Wrap(err, "failed to extract tables", goerr.V("pdf", pdfPath))
	}
	if len(tables) == 0 {
		logger.Error("no tables found")
		return nil, goerr.Wrap(domain.ErrNoTables, "failed to extract tables", goerr.V("pdf", pdfPath))
	}
	result.Tables = len(tables)

	table, err := s.processor.Process(tables)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to process tables")
	}
	result.Rows = len(table.Rows)
	logger.Info("tables merged", "tables", result.Tables, "rows", result.Rows, "columns", len(table.Header))

	if err := s.writer.Write(ctx, result.CSVPath, table); err != nil {
		return nil, goerr.Wrap(err, "failed to save CSV")
	}
	logger.Info("CSV saved", "path", result.CSVPath)

	archive, err := s.compressor.CreateZip(ctx, s.zipName, csvExtension)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compress CSV", goerr.V("archive", s.zipName))
	}
	result.Archive = archive
	logger.Info("tables saved and compressed", "archive", archive.Path)
	return result, nil
}

func csvName(pdfPath string) string {
	base := filepath.Base(pdfPath)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base + csvExtension
}
