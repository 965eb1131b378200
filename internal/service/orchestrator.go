package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
	"pdfharvest/internal/core/ports"
)

// Orchestrator coordinates the scrape → download → compress → remove workflow.
type Orchestrator struct {
	archiveName string
	extension   string
	scraper     ports.Scraper
	files       ports.FileManager
	compressor  ports.Compressor
	remover     ports.Remover
	logger      *slog.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	archiveName string,
	extension string,
	scraper ports.Scraper,
	files ports.FileManager,
	compressor ports.Compressor,
	remover ports.Remover,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		archiveName: archiveName,
		extension:   extension,
		scraper:     scraper,
		files:       files,
		compressor:  compressor,
		remover:     remover,
		logger:      logger,
	}
}

// Run executes one pipeline pass for pageURL.
//
// Finding no links, or failing to fetch them, ends the run early without an
// error. Individual download failures are recorded and skipped. A compression
// failure stops the run before any file is removed and is returned.
func (o *Orchestrator) Run(ctx context.Context, pageURL string) (*domain.RunResult, error) {
	result := &domain.RunResult{
		ID:        uuid.New().String(),
		URL:       pageURL,
		Stage:     domain.StageFetchLinks,
		StartedAt: time.Now().UTC(),
	}
	logger := o.logger.With("run_id", result.ID)

	logger.Info("fetching PDF links", "url", pageURL)
	links, err := o.scraper.PDFLinks(ctx, pageURL)
	if err != nil {
		logger.Error("failed to fetch PDF links", "url", pageURL, "error", err)
	}
	if len(links) == 0 {
		logger.Warn("no PDF links found", "url", pageURL)
		return o.finish(result), nil
	}
	result.Links = links

	result.Stage = domain.StageDownload
	logger.Info("downloading PDFs", "count", len(links))
	for _, link := range links {
		path, err := o.files.SaveFile(ctx, link)
		if err != nil {
			logger.Error("failed to download file", "url", link, "error", err)
			result.Failures = append(result.Failures, domain.DownloadFailure{URL: link, Err: err})
			continue
		}
		result.Downloaded = append(result.Downloaded, path)
	}
	logger.Info("downloads finished",
		"downloaded", len(result.Downloaded),
		"failed", len(result.Failures),
	)

	result.Stage = domain.StageCompress
	logger.Info("compressing files", "archive", o.archiveName)
	archive, err := o.compressor.CreateZip(ctx, o.archiveName, o.extension)
	if err != nil {
		logger.Error("fatal: archive creation failed, source files kept", "archive", o.archiveName, "error", err)
		return result, goerr.Wrap(err, "failed to compress files", goerr.V("archive", o.archiveName))
	}
	result.Archive = archive

	result.Stage = domain.StageRemove
	logger.Info("removing downloaded files")
	removed, err := o.remover.Remove(ctx)
	result.Removed = removed
	if err != nil {
		logger.Error("failed to remove downloaded files", "error", err)
		return result, goerr.Wrap(err, "failed to remove source files")
	}

	logger.Info("processing finished",
		"archive", archive.Path,
		"entries", len(archive.Entries),
		"removed", removed,
	)
	return o.finish(result), nil
}

func (o *Orchestrator) finish(result *domain.RunResult) *domain.RunResult {
	if result.Stage != domain.StageFetchLinks {
		result.Stage = domain.StageDone
	}
	result.Success = true
	result.CompletedAt = time.Now().UTC()
	return result
}
