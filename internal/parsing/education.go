package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

// eduLineClass enumerates how a line inside the education region reads.
// Making the classification explicit keeps the precedence rules auditable.
type eduLineClass int

const (
	eduLineOther eduLineClass = iota
	eduLineInstitution
	eduLineDegree
	eduLineYear
	eduLineSectionExit
)

var (
	eduEntryPattern   = regexp.MustCompile(`(?i)\b(education|academic|university|college|institute|degree|bachelor|master|phd|diploma)\b`)
	institutionWords  = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)
	degreeWords       = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|associate|diploma|b\.?s\.?c?|b\.?a\.?|m\.?s\.?c?|m\.?a\.?|mba|b\.?e\.?|b\.?tech|m\.?tech)\b`)
	gradYearPattern   = regexp.MustCompile(`(?i)(?:graduated\s*:?\s*)?\b(19\d{2}|20\d{2})\b`)
	exitHeaderPattern = regexp.MustCompile(`(?i)^(experience|work experience|professional experience|employment|skills|technical skills|certifications?|projects|summary)\s*:?\s*$`)
)

// defaultEducation is the placeholder entry produced when nothing is found.
var defaultEducation = types.Education{
	Degree:      "Bachelor's Degree",
	Institution: "University",
	Year:        "2020",
}

// ExtractEducation scans text for education entries. An institution or
// degree line arriving when the current entry already holds one flushes the
// entry and starts the next; year lines fill the current one;
// unassigned lines fill whichever of institution/degree is still empty.
// Produces one canonical placeholder entry when nothing is found.
func ExtractEducation(text string) []types.Education {
	var entries []types.Education
	var current *types.Education
	inSection := false

	flush := func() {
		if current != nil && (current.Degree != "" || current.Institution != "") {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range nonEmptyLines(text) {
		class := classifyEduLine(line)

		if class == eduLineSectionExit {
			if inSection {
				break
			}
			continue
		}
		if !inSection {
			if !eduEntryPattern.MatchString(line) {
				continue
			}
			inSection = true
			if sectionPatterns[SectionEducation].MatchString(line) {
				continue // bare header line carries no entry data
			}
		}

		switch class {
		case eduLineInstitution:
			if current != nil && current.Institution != "" {
				flush()
			}
			if current == nil {
				current = &types.Education{}
			}
			current.Institution = strings.TrimPrefix(line, "• ")
			if year := gradYearPattern.FindString(line); year != "" && current.Year == "" {
				current.Year = extractYear(line)
			}
		case eduLineDegree:
			if current != nil && current.Degree != "" {
				flush()
			}
			if current == nil {
				current = &types.Education{}
			}
			current.Degree = strings.TrimPrefix(line, "• ")
			if year := extractYear(line); year != "" && current.Year == "" {
				current.Year = year
			}
		case eduLineYear:
			if current == nil {
				current = &types.Education{}
			}
			if current.Year == "" {
				current.Year = extractYear(line)
			}
		default:
			if current == nil {
				continue
			}
			trimmed := strings.TrimPrefix(line, "• ")
			switch {
			case current.Institution == "":
				current.Institution = trimmed
			case current.Degree == "":
				current.Degree = trimmed
			}
		}
	}
	flush()

	if len(entries) == 0 {
		return []types.Education{defaultEducation}
	}
	return entries
}

// classifyEduLine assigns a line to exactly one class; institution beats
// degree beats year when a line matches several vocabularies.
func classifyEduLine(line string) eduLineClass {
	switch {
	case exitHeaderPattern.MatchString(line):
		return eduLineSectionExit
	case institutionWords.MatchString(line):
		return eduLineInstitution
	case degreeWords.MatchString(line):
		return eduLineDegree
	case gradYearPattern.MatchString(line) && len(line) < 40:
		return eduLineYear
	default:
		return eduLineOther
	}
}

// extractYear pulls the first four-digit year out of a line.
func extractYear(line string) string {
	if m := gradYearPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}
