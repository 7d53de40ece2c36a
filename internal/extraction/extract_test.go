package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	content := "Jane Doe\njane@example.com\nEXPERIENCE\nSoftware Engineer"

	text, err := ExtractText(context.Background(), "resume.txt", []byte(content))

	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractText(context.Background(), "resume.xlsx", []byte("data"))

	var unsupported *UnsupportedFileTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".xlsx", unsupported.Extension)
}

func TestExtractText_EmptyFileReturnsEmptyString(t *testing.T) {
	for _, name := range []string{"empty.pdf", "empty.docx", "empty.txt"} {
		text, err := ExtractText(context.Background(), name, nil)
		require.NoError(t, err, name)
		assert.Empty(t, strings.TrimSpace(text), name)
	}
}

func TestExtractText_CorruptPDFDoesNotError(t *testing.T) {
	text, err := ExtractText(context.Background(), "broken.pdf", []byte("%PDF-1.4 garbage \x00\x01\x02"))

	require.NoError(t, err)
	// Whatever survives the printable filter is acceptable; no panic, no error.
	assert.NotContains(t, text, "\x00")
}

func TestExtractText_PDFContentStreamScrape(t *testing.T) {
	// Minimal uncompressed content stream with text show operators.
	raw := "%PDF-1.4\nBT /F1 12 Tf (Jane Doe) Tj (Senior Software Engineer) Tj ET"
	text, err := ExtractText(context.Background(), "scraped.pdf", []byte(raw))

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Software Engineer")
}

func TestExtractText_DOCXXMLRunScrape(t *testing.T) {
	raw := `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Python Developer</w:t></w:r></w:p>`
	text, err := ExtractText(context.Background(), "resume.docx", []byte(raw))

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python Developer")
}

func TestExtractText_HTML(t *testing.T) {
	raw := `<html><head><style>body{color:red}</style></head><body><h1>Jane Doe</h1><p>Backend Engineer</p></body></html>`
	text, err := ExtractText(context.Background(), "resume.html", []byte(raw))

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Backend Engineer")
	assert.NotContains(t, text, "color:red")
}

func TestExtractText_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractText(ctx, "resume.txt", []byte("content"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilterPrintable_StripsControlBytes(t *testing.T) {
	out := filterPrintable([]byte("Jane\x00\x01Doe\nEngineer"))

	assert.Equal(t, "Jane Doe\nEngineer", out)
}

func TestScrapePDFBytes_FallsBackToLiterals(t *testing.T) {
	raw := "stream (Professional Summary) endstream (x1)"
	out := scrapePDFBytes([]byte(raw))

	assert.Contains(t, out, "Professional Summary")
	assert.NotContains(t, out, "x1")
}
