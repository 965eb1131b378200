package archive

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// Remover deletes files with one extension from a directory tree.
type Remover struct {
	dir       string
	extension string
	logger    *slog.Logger
	remove    func(path string) error
}

// NewRemover creates a Remover for files with extension under dir.
func NewRemover(dir, extension string, logger *slog.Logger) *Remover {
	return &Remover{
		dir:       dir,
		extension: normalizeExtension(extension),
		logger:    logger,
		remove:    os.Remove,
	}
}

// Remove deletes every matching file, recursing into subdirectories.
// Listing failures are returned; a file that cannot be deleted is logged
// and the rest are still attempted.
func (r *Remover) Remove(ctx context.Context) (int, error) {
	files, err := listFiles(r.dir, r.extension)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list files for removal")
	}

	removed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return removed, goerr.Wrap(err, "removal cancelled")
		}
		if err := r.remove(path); err != nil {
			r.logger.Warn("failed to remove file", "file", path, "error", err)
			continue
		}
		r.logger.Debug("file removed", "file", path)
		removed++
	}
	return removed, nil
}
