package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// Extract unpacks archivePath into destDir and returns the written paths.
// Entries resolving outside destDir are rejected.
func Extract(ctx context.Context, archivePath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive", goerr.V("path", archivePath))
	}
	defer r.Close()

	root := filepath.Clean(destDir)
	var written []string
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return written, goerr.Wrap(err, "extraction cancelled")
		}

		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
			return written, goerr.Wrap(domain.ErrUnsafePath, "refusing to extract entry", goerr.V("entry", f.Name))
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return written, goerr.Wrap(err, "failed to create directory", goerr.V("path", target))
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", filepath.Dir(target)))
	}

	src, err := f.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open entry", goerr.V("entry", f.Name))
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", target))
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return goerr.Wrap(err, "failed to extract entry", goerr.V("entry", f.Name))
	}
	return dst.Close()
}
