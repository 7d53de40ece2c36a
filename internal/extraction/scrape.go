package extraction

import (
	"regexp"
	"strings"
)

// Raw-byte scraping strategies. These acknowledge that a proper object-model
// parse is not always possible: they fish literal text tokens out of PDF
// content streams and DOCX XML without decompression.
var (
	// Parenthesized text objects inside PDF content streams: (Hello) Tj
	pdfTextShowPattern = regexp.MustCompile(`\(((?:\\.|[^()\\])+)\)\s*T[Jj]`)
	// Any parenthesized literal, used when no show operators survive.
	pdfLiteralPattern = regexp.MustCompile(`\(((?:\\.|[^()\\]){3,})\)`)
	// Text runs across the common DOCX/WordprocessingML tag schemes.
	xmlRunPattern = regexp.MustCompile(`<(?:w:t|t|text)(?:\s[^>]*)?>([^<]+)</(?:w:t|t|text)>`)
	// PDF escape sequences inside literal strings.
	pdfEscapePattern = regexp.MustCompile(`\\([()\\nrt])`)

	whitespaceRun = regexp.MustCompile(`[ \t]{2,}`)
)

// scrapePDFBytes runs the independent regex strategies over the raw bytes
// and concatenates every match. Results are unordered with respect to page
// layout; this is a best-effort scrape, not a text extraction.
func scrapePDFBytes(data []byte) string {
	raw := string(data)

	var parts []string
	for _, m := range pdfTextShowPattern.FindAllStringSubmatch(raw, -1) {
		parts = append(parts, unescapePDFLiteral(m[1]))
	}
	if len(parts) == 0 {
		for _, m := range pdfLiteralPattern.FindAllStringSubmatch(raw, -1) {
			candidate := unescapePDFLiteral(m[1])
			if looksLikeText(candidate) {
				parts = append(parts, candidate)
			}
		}
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// scrapeXMLRuns concatenates the inner text of paragraph/text-run style
// XML tags found in the raw bytes.
func scrapeXMLRuns(data []byte) string {
	var parts []string
	for _, m := range xmlRunPattern.FindAllStringSubmatch(string(data), -1) {
		text := strings.TrimSpace(m[1])
		if text != "" {
			parts = append(parts, text)
		}
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// filterPrintable strips non-printable bytes and collapses whitespace runs.
// The bluntest fallback: it loses all structure but never loses words that
// were stored as plain bytes.
func filterPrintable(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		switch {
		case b == '\n' || b == '\r' || b == '\t':
			sb.WriteByte('\n')
		case b >= 32 && b < 127:
			sb.WriteByte(b)
		default:
			sb.WriteByte(' ')
		}
	}
	return collapseWhitespace(sb.String())
}

// unescapePDFLiteral resolves backslash escapes inside a PDF literal string.
func unescapePDFLiteral(s string) string {
	return pdfEscapePattern.ReplaceAllStringFunc(s, func(m string) string {
		switch m[1] {
		case 'n':
			return "\n"
		case 'r', 't':
			return " "
		default:
			return string(m[1])
		}
	})
}

// looksLikeText filters out binary garbage that happens to sit inside
// parentheses: a plausible token is mostly letters, digits and punctuation.
func looksLikeText(s string) bool {
	if len(s) < 3 {
		return false
	}
	letters := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			letters++
		}
	}
	return float64(letters)/float64(len(s)) > 0.5
}

// stripXMLTags removes any residual markup from library output.
func stripXMLTags(s string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			sb.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return collapseWhitespace(sb.String())
}

func collapseWhitespace(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
