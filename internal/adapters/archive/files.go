package archive

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultExtension is used when no extension is given.
const DefaultExtension = ".pdf"

// normalizeExtension accepts "pdf", ".pdf" or ".PDF" and returns ".pdf".
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// listFiles walks dir recursively and returns regular files whose extension
// matches ext, case-insensitively. Any walk error is returned.
func listFiles(dir, ext string) ([]string, error) {
	ext = normalizeExtension(ext)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.ToLower(filepath.Ext(d.Name())) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list files", goerr.V("dir", dir), goerr.V("extension", ext))
	}
	return files, nil
}
