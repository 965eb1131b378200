package tabledata

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// TabulaReader uses a local tabula-java jar to extract lattice tables.
type TabulaReader struct {
	javaPath string
	jarPath  string
	timeout  time.Duration
}

// NewTabulaReader creates a reader for the given tabula jar. java is
// expected on PATH.
func NewTabulaReader(jarPath string) *TabulaReader {
	return &TabulaReader{
		javaPath: "java",
		jarPath:  jarPath,
		timeout:  10 * time.Minute,
	}
}

type tabulaTable struct {
	Data [][]struct {
		Text string `json:"text"`
	} `json:"data"`
}

// ReadTables runs tabula in lattice mode with JSON output.
func (r *TabulaReader) ReadTables(ctx context.Context, pdfPath, pages string) ([]domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if strings.TrimSpace(pages) == "" {
		pages = "all"
	}

	// --lattice: ruled tables, --format JSON: one object per detected table
	cmd := exec.CommandContext(ctx, r.javaPath, "-jar", r.jarPath,
		"--lattice", "--pages", pages, "--format", "JSON", pdfPath)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, goerr.Wrap(err, "tabula failed", goerr.V("path", pdfPath), goerr.V("stderr", stderr.String()))
	}

	var raw []tabulaTable
	if err := json.Unmarshal(out.Bytes(), &raw); err != nil {
		return nil, goerr.Wrap(err, "failed to decode tabula output", goerr.V("path", pdfPath))
	}
	return convertTabula(raw), nil
}

func convertTabula(raw []tabulaTable) []domain.Table {
	var tables []domain.Table
	for _, t := range raw {
		var rows [][]string
		for _, r := range t.Data {
			row := make([]string, len(r))
			for i, cell := range r {
				row[i] = strings.TrimSpace(cell.Text)
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			continue
		}
		tables = append(tables, domain.Table{Header: rows[0], Rows: rows[1:]})
	}
	return tables
}
