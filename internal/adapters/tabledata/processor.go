package tabledata

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"pdfharvest/internal/core/domain"
)

// Processor concatenates tables by column name and applies column renames.
type Processor struct {
	renames map[string]string
}

// NewProcessor creates a Processor. renames maps a column name to its
// replacement, e.g. "OD" → "Seg. Odontológica".
func NewProcessor(renames map[string]string) *Processor {
	return &Processor{renames: renames}
}

// Process stacks tables vertically. Columns are the union of all headers in
// first-seen order; cells missing from a table are left empty.
func (p *Processor) Process(tables []domain.Table) (domain.Table, error) {
	if len(tables) == 0 {
		return domain.Table{}, goerr.Wrap(domain.ErrNoTables, "nothing to process")
	}

	var columns []string
	index := make(map[string]int)
	var records []map[int]string

	for _, t := range tables {
		header := uniqueHeader(t.Header, widest(t))
		positions := make([]int, len(header))
		for i, name := range header {
			pos, ok := index[name]
			if !ok {
				pos = len(columns)
				index[name] = pos
				columns = append(columns, name)
			}
			positions[i] = pos
		}

		for _, row := range t.Rows {
			record := make(map[int]string, len(row))
			for i, cell := range row {
				record[positions[i]] = cell
			}
			records = append(records, record)
		}
	}

	out := domain.Table{Header: make([]string, len(columns))}
	for i, name := range columns {
		if renamed, ok := p.renames[name]; ok {
			name = renamed
		}
		out.Header[i] = name
	}
	for _, record := range records {
		row := make([]string, len(columns))
		for pos, cell := range record {
			row[pos] = cell
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func widest(t domain.Table) int {
	n := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// uniqueHeader pads header to width and makes names unique: blank names
// become "Unnamed: i" and repeats get ".1", ".2" suffixes.
func uniqueHeader(header []string, width int) []string {
	out := make([]string, width)
	seen := make(map[string]int)
	for i := range out {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		out[i] = name
	}
	return out
}
