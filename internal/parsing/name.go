package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

var (
	nameLabeled     = regexp.MustCompile(`(?i)name\s*:\s*([A-Z][a-zA-Z'.\-]+(?: [A-Z][a-zA-Z'.\-]+){1,2})`)
	capitalizedName = regexp.MustCompile(`^[A-Z][a-zA-Z'.\-]+(?: [A-Z][a-zA-Z'.\-]+){1,2}$`)
	allCapsName     = regexp.MustCompile(`^[A-Z][A-Z'.\-]+(?: [A-Z][A-Z'.\-]+){1,2}$`)
	contactHeader   = regexp.MustCompile(`(?i)^contact( information)?\s*:?\s*$`)
	nameWordShape   = regexp.MustCompile(`^[A-Za-z'.\-]{2,}$`)
)

// ExtractName finds the candidate's name with layered heuristics: the first
// non-contact lines, a "Name:" label, an all-caps line, then the lines just
// after a "Contact Information" header. Returns the UnknownName sentinel
// when every heuristic misses.
func ExtractName(text string) string {
	lines := nonEmptyLines(text)

	// (a) One of the first five lines, 1-3 capitalized words, no digits or
	// contact shapes.
	limit := min(len(lines), 5)
	for i := 0; i < limit; i++ {
		if name, ok := plausibleName(lines[i]); ok {
			return name
		}
	}

	// (b) Explicit "Name:" label anywhere.
	if m := nameLabeled.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	// (c) A fully capitalized line near the top.
	for i := 0; i < limit; i++ {
		if allCapsName.MatchString(lines[i]) && !resumeBoilerplate[strings.ToLower(strings.Fields(lines[i])[0])] {
			return titleCaseWords(lines[i])
		}
	}

	// (d) The lines just after a "Contact Information" header.
	for i, line := range lines {
		if !contactHeader.MatchString(line) {
			continue
		}
		for j := i + 1; j < min(len(lines), i+4); j++ {
			if name, ok := plausibleName(lines[j]); ok {
				return name
			}
		}
	}

	return types.UnknownName
}

// plausibleName accepts a line of 2-3 capitalized words with no contact
// shapes, digits, or boilerplate vocabulary.
func plausibleName(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789") {
		return "", false
	}
	if line == strings.ToUpper(line) {
		// All-caps lines are handled by the dedicated heuristic so the
		// result can be re-cased.
		return "", false
	}
	if !capitalizedName.MatchString(line) {
		return "", false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 3 {
		return "", false
	}
	for _, word := range words {
		if !nameWordShape.MatchString(word) || resumeBoilerplate[strings.ToLower(word)] {
			return "", false
		}
	}
	return line, true
}

// titleCaseWords converts "JANE DOE" to "Jane Doe".
func titleCaseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = types.TitleFirst(word)
	}
	return strings.Join(words, " ")
}

// nonEmptyLines splits text into trimmed, non-blank lines.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
