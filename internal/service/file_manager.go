package service

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
	"pdfharvest/internal/core/ports"
)

var separators = strings.NewReplacer("/", "_", "\\", "_")

// FileManager downloads a URL and saves the payload under a name derived
// from the URL. Saved names always carry the extension the rest of the
// pipeline archives and removes.
// Failures are logged and returned; it never swallows them.
type FileManager struct {
	downloader ports.Downloader
	saver      ports.Saver
	extension  string
	logger     *slog.Logger
}

// NewFileManager creates a new FileManager for files with extension.
func NewFileManager(downloader ports.Downloader, saver ports.Saver, extension string, logger *slog.Logger) *FileManager {
	return &FileManager{downloader: downloader, saver: saver, extension: extension, logger: logger}
}

// SaveFile downloads fileURL and returns the path it was written to.
func (m *FileManager) SaveFile(ctx context.Context, fileURL string) (string, error) {
	name, err := FilenameFromURL(fileURL, m.extension)
	if err != nil {
		m.logger.Error("failed to derive file name", "url", fileURL, "error", err)
		return "", err
	}

	data, err := m.downloader.Download(ctx, fileURL)
	if err != nil {
		m.logger.Error("failed to download file", "url", fileURL, "error", err)
		return "", err
	}

	saved, err := m.saver.Save(ctx, name, data)
	if err != nil {
		m.logger.Error("failed to save file", "file", name, "error", err)
		return "", err
	}

	m.logger.Info("file downloaded", "file", name, "bytes", len(data))
	return saved, nil
}

// FilenameFromURL derives a local file name from rawURL.
//
// The name is the last segment of the escaped path, unescaped, with any
// encoded separators replaced by "_". A path ending in "/" has no name.
// When extension is set and the segment lacks it, a query value whose base
// name carries the extension is used instead ("/get?f=anexo.pdf" gives
// "anexo.pdf"); failing that the extension is appended.
func FilenameFromURL(rawURL, extension string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse URL", goerr.V("url", rawURL))
	}

	escaped := u.EscapedPath()
	segment := escaped[strings.LastIndex(escaped, "/")+1:]
	if segment == "" {
		return "", goerr.Wrap(domain.ErrInvalidFilename, "empty path segment", goerr.V("url", rawURL))
	}
	name, err := url.PathUnescape(segment)
	if err != nil {
		return "", goerr.Wrap(domain.ErrInvalidFilename, "undecodable path segment", goerr.V("url", rawURL))
	}
	name = separators.Replace(name)
	if name == "." || name == ".." {
		return "", goerr.Wrap(domain.ErrInvalidFilename, "relative path segment", goerr.V("url", rawURL))
	}

	if extension == "" || hasExtension(name, extension) {
		return name, nil
	}
	if fromQuery := queryFilename(u.Query(), extension); fromQuery != "" {
		return fromQuery, nil
	}
	return name + extension, nil
}

// queryFilename returns the first query value, by key order, whose base
// name ends with extension.
func queryFilename(values url.Values, extension string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range values[k] {
			name := separators.Replace(path.Base(v))
			if name != extension && hasExtension(name, extension) {
				return name
			}
		}
	}
	return ""
}

func hasExtension(name, extension string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(extension))
}
