package domain

import "time"

// RunResult holds the outcome of one scrape → download → compress → remove run.
type RunResult struct {
	ID          string
	URL         string
	Links       []string
	Downloaded  []string // paths of saved files
	Failures    []DownloadFailure
	Archive     *Archive
	Removed     int
	Stage       Stage // last stage reached
	Success     bool
	StartedAt   time.Time
	CompletedAt time.Time
}

// DownloadFailure records a link that could not be downloaded or saved.
type DownloadFailure struct {
	URL string
	Err error
}

// Stage is a step of the processing pipeline.
type Stage string

const (
	StageFetchLinks Stage = "fetch_links"
	StageDownload   Stage = "download"
	StageCompress   Stage = "compress"
	StageRemove     Stage = "remove"
	StageDone       Stage = "done"
)

// Archive describes a ZIP file written by a compressor.
type Archive struct {
	Path    string
	Entries []string // names relative to the source directory
	Skipped []string // files that could not be added
}

// Table is a rectangular block of text cells read from a document.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableResult holds the outcome of a table extraction run.
type TableResult struct {
	PDFPath string
	CSVPath string
	Tables  int
	Rows    int
	Archive *Archive
}
