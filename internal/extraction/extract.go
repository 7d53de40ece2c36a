// Package extraction converts uploaded resume documents (PDF, DOCX, TXT,
// HTML) into raw text. Parsing is best-effort: the library parsers are tried
// first, then regex scrapes of the raw bytes, so callers always get whatever
// text could be recovered rather than a hard failure.
package extraction

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// minTextLength is the threshold below which a format-specific extraction is
// considered to have failed and the blunt byte-filter fallback kicks in.
const minTextLength = 100

// ExtractText converts a document into raw text, dispatching on the file
// extension. An unrecognized extension returns UnsupportedFileTypeError;
// any other internal failure degrades to the best text recovered so far,
// possibly empty. Callers must treat PDF and DOCX output as lossy.
func ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDF(data), nil
	case ".docx", ".doc":
		return extractDOCX(data), nil
	case ".txt":
		return string(data), nil
	case ".html", ".htm":
		return extractHTML(data), nil
	default:
		return "", &UnsupportedFileTypeError{Extension: ext}
	}
}

// extractPDF tries the real PDF parser first and falls back to scraping
// text tokens out of the raw content streams.
func extractPDF(data []byte) string {
	text := extractPDFPages(data)
	if len(strings.TrimSpace(text)) >= minTextLength {
		return text
	}

	scraped := scrapePDFBytes(data)
	if len(strings.TrimSpace(scraped)) > len(strings.TrimSpace(text)) {
		text = scraped
	}
	if len(strings.TrimSpace(text)) >= minTextLength {
		return text
	}

	// Last resort: strip non-printable bytes and collapse whitespace.
	filtered := filterPrintable(data)
	if len(strings.TrimSpace(filtered)) > len(strings.TrimSpace(text)) {
		return filtered
	}
	return text
}

// extractPDFPages walks every page with the pdf library, concatenating
// plain text. Returns "" when the document cannot be opened.
func extractPDFPages(data []byte) string {
	defer func() {
		// The pdf library panics on some malformed inputs; a broken file
		// must still yield a string to the caller.
		_ = recover()
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// extractDOCX reads the document with the docx library, falling back to
// scraping XML text runs from the raw bytes.
func extractDOCX(data []byte) string {
	text := extractDOCXDocument(data)
	if len(strings.TrimSpace(text)) >= minTextLength {
		return text
	}

	scraped := scrapeXMLRuns(data)
	if len(strings.TrimSpace(scraped)) > len(strings.TrimSpace(text)) {
		text = scraped
	}
	if len(strings.TrimSpace(text)) >= minTextLength {
		return text
	}

	filtered := filterPrintable(data)
	if len(strings.TrimSpace(filtered)) > len(strings.TrimSpace(text)) {
		return filtered
	}
	return text
}

// extractDOCXDocument parses the file as a real DOCX archive.
func extractDOCXDocument(data []byte) string {
	defer func() {
		_ = recover()
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return stripXMLTags(content)
}

// extractHTML pulls visible text out of an HTML document.
func extractHTML(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return filterPrintable(data)
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element.
		text = doc.Text()
	}
	return text
}
