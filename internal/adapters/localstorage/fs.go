package localstorage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// LocalStorage implements ports.Saver for the local filesystem.
// The directory must already exist; LocalStorage never creates it.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

// Save writes data to BaseDir/filename, replacing any existing file.
func (s *LocalStorage) Save(ctx context.Context, filename string, data []byte) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == ".." {
		return "", goerr.Wrap(domain.ErrInvalidFilename, "refusing to save file", goerr.V("filename", filename))
	}
	path := filepath.Join(s.BaseDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create file", goerr.V("path", path))
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}
	if err := file.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close file", goerr.V("path", path))
	}
	return path, nil
}

