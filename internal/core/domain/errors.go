package domain

import "errors"

var (
	// ErrInvalidArchiveName is returned when an archive name lacks the .zip suffix.
	ErrInvalidArchiveName = errors.New("archive name must end with .zip")

	// ErrUnexpectedStatus is returned for non-2xx HTTP responses.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrInvalidFilename is returned when no file name can be derived from a URL.
	ErrInvalidFilename = errors.New("cannot derive file name from URL")

	// ErrNoTables is returned when a document yields no tables.
	ErrNoTables = errors.New("no tables extracted from document")

	// ErrTargetNotSet is returned when table extraction runs without a target PDF.
	ErrTargetNotSet = errors.New("target PDF not set")

	// ErrUnsafePath is returned for archive entries that escape the destination.
	ErrUnsafePath = errors.New("archive entry escapes destination directory")
)
