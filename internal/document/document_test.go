package document

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/common"
)

func TestExtractPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("Chief Complaint: headache\n"), 0644))

	e := NewExtractor(nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Chief Complaint: headache\n", res.Text)
	assert.Equal(t, constants.TEXT, res.SourceType)
	assert.Equal(t, 1, res.Pages)
}

func TestExtractMarkdownAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# Admission\n"), 0644))

	e := NewExtractor(nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, constants.TEXT, res.SourceType)
}

func TestExtractDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.docx")
	writeDocx(t, path, []string{"Patient Name: Jane Roe", "Chief Complaint: vertigo"})

	e := NewExtractor(nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, constants.WORD, res.SourceType)
	assert.Contains(t, res.Text, "Patient Name: Jane Roe\n")
	assert.Contains(t, res.Text, "Chief Complaint: vertigo\n")
}

func TestExtractMissingFile(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentRead)
}

func TestExtractCorruptDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentRead)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.tiff")
	require.NoError(t, os.WriteFile(path, []byte{0x4d, 0x4d}, 0644))

	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentRead)
}

func TestExtractCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewExtractor(nil)
	_, err := e.Extract(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

// writeDocx builds a minimal WordprocessingML container with one paragraph
// per input line.
func writeDocx(t *testing.T, path string, paragraphs []string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
	}
	body += `</w:body></w:document>`

	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
