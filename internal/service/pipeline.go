package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/adapters/archive"
	"pdfharvest/internal/adapters/tabledata"
	"pdfharvest/internal/config"
	"pdfharvest/internal/core/domain"
	"pdfharvest/internal/core/ports"
)

// Pipeline exposes the stages the CLI runs: scrape, table extraction and
// cleanup.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewPipeline creates a Pipeline for cfg.
func NewPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Scrape collects the configured page's PDFs into the PDF archive.
func (p *Pipeline) Scrape(ctx context.Context) (*domain.RunResult, error) {
	p.logger.Info("starting PDF processing service")
	svc, err := NewProcessingService(p.cfg, p.logger)
	if err != nil {
		return nil, err
	}
	result, err := svc.Run(ctx, p.cfg.URL)
	if err != nil {
		return result, err
	}
	p.logger.Info("PDF processing finished", "run_id", result.ID)
	return result, nil
}

// ExtractTables unpacks the target PDF from the PDF archive when it is not
// already on disk, then converts its tables to a compressed CSV.
func (p *Pipeline) ExtractTables(ctx context.Context) (*domain.TableResult, error) {
	if p.cfg.TargetPDF == "" {
		return nil, goerr.Wrap(domain.ErrTargetNotSet, "set TARGET_PDF to extract tables")
	}
	pdfPath := filepath.Join(p.cfg.PDFDir, p.cfg.TargetPDF)

	if _, err := os.Stat(pdfPath); err != nil {
		zipPath := filepath.Join(p.cfg.PDFDir, p.cfg.ZipName)
		p.logger.Info("unpacking PDF archive", "archive", zipPath)
		if _, err := archive.Extract(ctx, zipPath, p.cfg.PDFDir); err != nil {
			return nil, err
		}
		if _, err := os.Stat(pdfPath); err != nil {
			return nil, goerr.Wrap(err, "target PDF not found in archive", goerr.V("pdf", p.cfg.TargetPDF))
		}
	}

	svc := NewTableService(
		p.tableReader(),
		tabledata.NewProcessor(p.cfg.Abbreviations),
		tabledata.NewCSVWriter(),
		archive.NewDecorated(p.cfg.CSVDir, p.logger),
		p.cfg.CSVDir,
		p.cfg.CSVZipName,
		p.cfg.TablePages,
		p.logger,
	)
	return svc.Run(ctx, pdfPath)
}

// Cleanup removes PDFs left in the PDF directory.
func (p *Pipeline) Cleanup(ctx context.Context) (int, error) {
	p.logger.Info("removing temporary PDF files", "dir", p.cfg.PDFDir)
	return archive.NewRemover(p.cfg.PDFDir, pdfExtension, p.logger).Remove(ctx)
}

// RunAll scrapes, then extracts tables and cleans up when a target PDF is
// configured.
func (p *Pipeline) RunAll(ctx context.Context) error {
	if _, err := p.Scrape(ctx); err != nil {
		return err
	}
	if p.cfg.TargetPDF == "" {
		p.logger.Info("no target PDF configured, skipping table extraction")
		return nil
	}
	if _, err := p.ExtractTables(ctx); err != nil {
		return err
	}
	_, err := p.Cleanup(ctx)
	return err
}

func (p *Pipeline) tableReader() ports.TableReader {
	if p.cfg.TabulaJar != "" {
		return tabledata.NewTabulaReader(p.cfg.TabulaJar)
	}
	return tabledata.NewPDFReader()
}
