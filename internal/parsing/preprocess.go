// Package parsing turns raw extracted resume text into a structured
// candidate record through a preprocessor, a section segmenter, and a set of
// independent heuristic field extractors. Every extractor is a pure function
// that never fails: on a miss it returns an empty value or a documented
// sentinel so the assembler can decide whether to fall back to template data.
package parsing

import (
	"regexp"
	"strings"
)

// headerToken matches the canonical section names in the all-caps form they
// take as standalone resume headings. Longest alternatives first so
// "WORK EXPERIENCE" wins over "EXPERIENCE". Case-sensitive on purpose:
// lowercase "experience" inside a sentence must not trigger a break.
const headerToken = `PROFESSIONAL EXPERIENCE|WORK EXPERIENCE|PROFESSIONAL SUMMARY|TECHNICAL SKILLS|CERTIFICATIONS|CERTIFICATES|EDUCATION|EXPERIENCE|EMPLOYMENT|SKILLS|SUMMARY|OBJECTIVE|PROFILE`

var (
	curlyQuotes  = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
	bulletGlyphs = regexp.MustCompile(`(?m)^[ \t]*[•◦▪‣·*\-–—][ \t]+`)
	spaceRun     = regexp.MustCompile(`[ \t]{2,}`)
	blankRun     = regexp.MustCompile(`\n{3,}`)
	sentenceJoin = regexp.MustCompile(`([a-z][.!?]) +([A-Z])`)
	emailToken   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneToken   = regexp.MustCompile(`(\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	urlToken     = regexp.MustCompile(`https?://\S+|(?:www\.|linkedin\.com/|github\.com/)\S+`)

	// Known headers buried mid-line, and generic "ALL CAPS WORDS:" headings.
	headerMidLine  = regexp.MustCompile(`([^\n]) (` + headerToken + `)\b`)
	headerTrailing = regexp.MustCompile(`(?m)^(` + headerToken + `|[A-Z][A-Z &/]{2,}):? +(\S)`)
	allCapsHeading = regexp.MustCompile(`([^\n]) ([A-Z][A-Z &/]{2,}:)`)
	headerLonely   = regexp.MustCompile(`([^\n])\n((?:` + headerToken + `):?\n)`)
)

// Preprocess normalizes whitespace and punctuation and re-inserts the
// structural line breaks lost by lossy document extraction. The transform is
// deterministic and idempotent: every insertion rule only fires when the
// token is not already at the start of its own line.
func Preprocess(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = curlyQuotes.Replace(text)
	text = spaceRun.ReplaceAllString(text, " ")

	// Re-separate paragraphs the extractor joined into one line.
	text = sentenceJoin.ReplaceAllString(text, "$1\n$2")

	// Section headings onto their own lines: break before a known header or
	// an "ALL CAPS:" token buried mid-line, then after a header that still
	// shares its line with content.
	text = headerMidLine.ReplaceAllString(text, "$1\n$2")
	text = allCapsHeading.ReplaceAllString(text, "$1\n$2")
	text = headerTrailing.ReplaceAllString(text, "$1\n$2")

	// Contact tokens go onto their own line.
	for _, pattern := range []*regexp.Regexp{emailToken, phoneToken, urlToken} {
		text = isolateToken(text, pattern)
	}

	// Bullets normalize to a single glyph; headers get a leading blank line.
	text = bulletGlyphs.ReplaceAllString(text, "• ")
	text = headerLonely.ReplaceAllString(text, "$1\n\n$2")
	text = blankRun.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// isolateToken moves every match of pattern onto its own line unless it
// already occupies one.
func isolateToken(text string, pattern *regexp.Regexp) string {
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		if start < last {
			continue
		}
		sb.WriteString(text[last:start])
		if start > 0 && text[start-1] != '\n' {
			// Only break when the token shares its line with other words.
			before := text[:start]
			lineStart := strings.LastIndexByte(before, '\n') + 1
			if strings.TrimSpace(before[lineStart:]) != "" {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(text[start:end])
		if end < len(text) && text[end] != '\n' && strings.TrimSpace(lineRemainder(text, end)) != "" {
			sb.WriteString("\n")
		}
		last = end
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// lineRemainder returns the rest of the line following offset.
func lineRemainder(text string, offset int) string {
	rest := text[offset:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}
