package tabledata

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placedText struct {
	x, y float64
	s    string
}

// writePDF builds a minimal uncompressed PDF with one content stream per
// page, positioning every string with an absolute text matrix.
func writePDF(t *testing.T, pages ...[]placedText) string {
	t.Helper()

	var objects []string
	kids := make([]string, len(pages))
	for i, texts := range pages {
		var content strings.Builder
		content.WriteString("BT /F1 10 Tf\n")
		for _, tx := range texts {
			fmt.Fprintf(&content, "1 0 0 1 %g %g Tm (%s) Tj\n", tx.x, tx.y, tx.s)
		}
		content.WriteString("ET")

		pageObj := 3 + 2*i
		kids[i] = fmt.Sprintf("%d 0 R", pageObj)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R >>", pageObj+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		)
	}
	objects = append([]string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
	}, objects...)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "Anexo_I.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestPDFReader_ReadTables(t *testing.T) {
	path := writePDF(t,
		[]placedText{{72, 750, "Capa"}},
		[]placedText{
			{72, 720, "PROCEDIMENTO"}, {300, 720, "OD"}, {400, 720, "AMB"},
			{72, 700, "CONSULTA"}, {300, 700, "OD"},
			{72, 680, "EXAME"}, {400, 680, "AMB"},
		},
		[]placedText{
			{72, 720, "PROCEDIMENTO"}, {300, 720, "OD"},
			{72, 700, "RADIOGRAFIA"}, {300, 700, "OD"},
		},
	)
	r := NewPDFReader()

	t.Run("selected pages become tables", func(t *testing.T) {
		tables, err := r.ReadTables(context.Background(), path, "2-10")
		require.NoError(t, err)
		require.Len(t, tables, 2)

		assert.Equal(t, []string{"PROCEDIMENTO", "OD", "AMB"}, tables[0].Header)
		assert.Equal(t, [][]string{{"CONSULTA", "OD"}, {"EXAME", "AMB"}}, tables[0].Rows)
		assert.Equal(t, []string{"PROCEDIMENTO", "OD"}, tables[1].Header)
		assert.Equal(t, [][]string{{"RADIOGRAFIA", "OD"}}, tables[1].Rows)
	})

	t.Run("all pages", func(t *testing.T) {
		tables, err := r.ReadTables(context.Background(), path, "all")
		require.NoError(t, err)
		require.Len(t, tables, 3)
		assert.Equal(t, []string{"Capa"}, tables[0].Header)
		assert.Empty(t, tables[0].Rows)
	})

	t.Run("invalid page selection", func(t *testing.T) {
		_, err := r.ReadTables(context.Background(), path, "last")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.ReadTables(ctx, path, "all")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPDFReader_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("<html>not a pdf</html>"), 0644))

	_, err := NewPDFReader().ReadTables(context.Background(), path, "all")
	assert.Error(t, err)
}
