package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// ZipCompressor implements ports.Compressor over a single directory.
type ZipCompressor struct {
	dir    string
	logger *slog.Logger
	open   func(path string) (io.ReadCloser, error)
}

// NewZipCompressor creates a ZipCompressor rooted at dir.
func NewZipCompressor(dir string, logger *slog.Logger) *ZipCompressor {
	return &ZipCompressor{dir: dir, logger: logger, open: openFile}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// CreateZip writes every file under the directory with the given extension
// into dir/archiveName using deflate. Entry names are relative to the
// directory. Files that cannot be added are logged and skipped; failing to
// list the directory or to write the archive itself is returned.
func (c *ZipCompressor) CreateZip(ctx context.Context, archiveName, extension string) (*domain.Archive, error) {
	zipPath := filepath.Join(c.dir, archiveName)

	files, err := listFiles(c.dir, extension)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create archive", goerr.V("path", zipPath))
	}
	defer out.Close()

	result := &domain.Archive{Path: zipPath}
	zw := zip.NewWriter(out)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return nil, goerr.Wrap(err, "archive creation cancelled", goerr.V("path", zipPath))
		}
		if filepath.Clean(path) == filepath.Clean(zipPath) {
			continue
		}

		rel, err := filepath.Rel(c.dir, path)
		if err != nil {
			c.logger.Warn("failed to add file to archive", "file", path, "error", err)
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if err := c.addFile(zw, path, filepath.ToSlash(rel)); err != nil {
			c.logger.Warn("failed to add file to archive", "file", rel, "error", err)
			result.Skipped = append(result.Skipped, rel)
			continue
		}
		c.logger.Debug("file added to archive", "file", rel)
		result.Entries = append(result.Entries, filepath.ToSlash(rel))
	}

	if err := zw.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize archive", goerr.V("path", zipPath))
	}
	if err := out.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close archive", goerr.V("path", zipPath))
	}

	c.logger.Info("archive created", "path", zipPath, "entries", len(result.Entries))
	return result, nil
}

// addFile reads path fully before creating its entry, so a file that
// fails to read leaves nothing behind in the archive.
func (c *ZipCompressor) addFile(zw *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat file", goerr.V("path", path))
	}

	src, err := c.open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer src.Close()

	var content bytes.Buffer
	if _, err := io.Copy(&content, src); err != nil {
		return goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return goerr.Wrap(err, "failed to build entry header", goerr.V("path", path))
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return goerr.Wrap(err, "failed to create entry", goerr.V("name", name))
	}
	if _, err := w.Write(content.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to write entry", goerr.V("name", name))
	}
	return nil
}
