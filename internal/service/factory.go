package service

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/adapters/archive"
	"pdfharvest/internal/adapters/downloader"
	"pdfharvest/internal/adapters/extractor"
	"pdfharvest/internal/adapters/httpclient"
	"pdfharvest/internal/adapters/localstorage"
	"pdfharvest/internal/adapters/scraper"
	"pdfharvest/internal/config"
)

const pdfExtension = ".pdf"

// NewProcessingService wires the concrete adapters into an Orchestrator.
func NewProcessingService(cfg *config.Config, logger *slog.Logger) (*Orchestrator, error) {
	info, err := os.Stat(cfg.PDFDir)
	if err != nil {
		logger.Error("failed to create processing service", "dir", cfg.PDFDir, "error", err)
		return nil, goerr.Wrap(err, "PDF directory unavailable", goerr.V("dir", cfg.PDFDir))
	}
	if !info.IsDir() {
		logger.Error("failed to create processing service", "dir", cfg.PDFDir, "error", "not a directory")
		return nil, goerr.New("PDF directory is not a directory", goerr.V("dir", cfg.PDFDir))
	}

	client := httpclient.NewClient(cfg.HTTPTimeout)
	links := extractor.NewPDFLinkExtractor(cfg.Filter, logger)
	pageScraper := scraper.NewPageScraper(client, links)

	files := NewFileManager(
		downloader.NewHTTPDownloader(cfg.HTTPTimeout),
		localstorage.NewLocalStorage(cfg.PDFDir),
		pdfExtension,
		logger,
	)

	orchestrator := NewOrchestrator(
		cfg.ZipName,
		pdfExtension,
		pageScraper,
		files,
		archive.NewDecorated(cfg.PDFDir, logger),
		archive.NewRemover(cfg.PDFDir, pdfExtension, logger),
		logger,
	)
	logger.Info("processing service created", "dir", cfg.PDFDir, "filter", cfg.Filter, "archive", cfg.ZipName)
	return orchestrator, nil
}
