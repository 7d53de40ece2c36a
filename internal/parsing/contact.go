package parsing

import (
	"regexp"
	"strings"
)

var (
	emailLabeled = regexp.MustCompile(`(?i)(?:e-?mail|mail)\s*:?\s*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`)
	emailBare    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	phoneLabeled       = regexp.MustCompile(`(?i)(?:phone|tel|mobile|cell)\s*:?\s*(\+?[\d\s().\-]{7,20})`)
	phoneUS            = regexp.MustCompile(`(\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	phoneInternational = regexp.MustCompile(`\+\d{1,3}[\s.\-]?\d{1,4}([\s.\-]?\d{2,4}){2,4}`)
	nonDigit           = regexp.MustCompile(`\D`)

	locationLabeled = regexp.MustCompile(`(?i)(?:address|location|based in)\s*:?\s*([A-Za-z][A-Za-z .\-]+(?:,\s*[A-Za-z]{2,})?(?:\s+\d{5})?)`)
	cityState       = regexp.MustCompile(`\b([A-Z][a-zA-Z .\-]+),\s*([A-Z]{2})\b(\s+\d{5}(-\d{4})?)?`)
	cityZip         = regexp.MustCompile(`\b([A-Z][a-zA-Z .\-]+)\s+(\d{5}(-\d{4})?|[A-Z]\d[A-Z]\s?\d[A-Z]\d)\b`)
	// Single capitalized word, or words followed by a comma part; two bare
	// capitalized words are rejected because that shape is usually a name.
	standaloneCity = regexp.MustCompile(`^(?:[A-Z][a-z]+|[A-Z][a-z]+(?: [A-Z][a-z]+)?, [A-Z][a-zA-Z ]+)$`)
)

// resumeBoilerplate lists capitalized tokens that look like standalone
// locations but never are.
var resumeBoilerplate = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "summary": true,
	"objective": true, "references": true, "education": true, "skills": true,
	"experience": true, "profile": true, "contact": true,
}

// ExtractEmail returns the first email address found, preferring labeled
// variants ("Email:", "E-mail:"). Empty string when nothing matches.
func ExtractEmail(text string) string {
	if m := emailLabeled.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return emailBare.FindString(text)
}

// ExtractPhone returns the first phone number found, normalized to
// XXX-XXX-XXXX (10 digits) or +1 XXX-XXX-XXXX (11 digits with leading 1).
// Non-US shapes are returned trimmed as matched; empty string on no match.
func ExtractPhone(text string) string {
	raw := ""
	if m := phoneLabeled.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := phoneUS.FindString(text); m != "" {
		raw = m
	} else if m := phoneInternational.FindString(text); m != "" {
		raw = m
	}
	if raw == "" {
		return ""
	}
	return normalizePhone(raw)
}

// normalizePhone reformats 10/11-digit numbers and leaves anything else as
// the trimmed raw match.
func normalizePhone(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	switch {
	case len(digits) == 10:
		return digits[0:3] + "-" + digits[3:6] + "-" + digits[6:10]
	case len(digits) == 11 && digits[0] == '1':
		return "+1 " + digits[1:4] + "-" + digits[4:7] + "-" + digits[7:11]
	default:
		return strings.TrimSpace(raw)
	}
}

// ExtractLocation finds the candidate's location: labeled patterns first,
// then "City, ST" and "City ZIP" shapes, then a scan of the first 20 lines
// for a standalone capitalized token. Empty string on failure.
func ExtractLocation(text string) string {
	if m := locationLabeled.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := cityState.FindStringSubmatch(text); m != nil {
		loc := m[1] + ", " + m[2]
		if zip := strings.TrimSpace(m[3]); zip != "" {
			loc += " " + zip
		}
		return loc
	}
	if m := cityZip.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[0])
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || phoneUS.MatchString(line) {
			continue
		}
		if !standaloneCity.MatchString(line) {
			continue
		}
		first := strings.ToLower(strings.Fields(line)[0])
		if resumeBoilerplate[strings.TrimSuffix(first, ",")] {
			continue
		}
		return line
	}
	return ""
}
