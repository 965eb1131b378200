package archive

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
	"pdfharvest/internal/core/ports"
)

const archiveExtension = ".zip"

// Validating rejects archive names without the .zip suffix before
// delegating. No file I/O happens for a rejected name.
type Validating struct {
	next ports.Compressor
}

// NewValidating wraps next with archive name validation.
func NewValidating(next ports.Compressor) *Validating {
	return &Validating{next: next}
}

// CreateZip implements ports.Compressor.
func (v *Validating) CreateZip(ctx context.Context, archiveName, extension string) (*domain.Archive, error) {
	if !strings.HasSuffix(strings.ToLower(archiveName), archiveExtension) {
		return nil, goerr.Wrap(domain.ErrInvalidArchiveName, "invalid archive name", goerr.V("name", archiveName))
	}
	return v.next.CreateZip(ctx, archiveName, extension)
}

// Logging emits a line before and after the delegate call.
type Logging struct {
	next   ports.Compressor
	logger *slog.Logger
}

// NewLogging wraps next with start/end logging.
func NewLogging(next ports.Compressor, logger *slog.Logger) *Logging {
	return &Logging{next: next, logger: logger}
}

// CreateZip implements ports.Compressor.
func (l *Logging) CreateZip(ctx context.Context, archiveName, extension string) (*domain.Archive, error) {
	l.logger.Info("starting archive creation", "archive", archiveName, "extension", extension)
	archive, err := l.next.CreateZip(ctx, archiveName, extension)
	if err != nil {
		l.logger.Error("archive creation failed", "archive", archiveName, "error", err)
		return nil, err
	}
	l.logger.Info("finished archive creation", "archive", archiveName, "entries", len(archive.Entries))
	return archive, nil
}

// NewDecorated returns the standard chain: validation, then logging, then
// the ZipCompressor for dir.
func NewDecorated(dir string, logger *slog.Logger) ports.Compressor {
	return NewValidating(NewLogging(NewZipCompressor(dir, logger), logger))
}
