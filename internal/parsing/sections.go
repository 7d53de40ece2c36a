package parsing

import (
	"regexp"
	"strings"
)

// Section names the coarse regions a resume is split into before field
// extraction.
type Section string

// The section set is fixed; unknown content lands in SectionOther.
const (
	SectionHeader         Section = "header"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionOther          Section = "other"
)

// sectionPatterns maps each known section to the regex family recognizing
// its header lines. A header line switches the segmenter's cursor and is not
// itself emitted into any section.
var sectionPatterns = map[Section]*regexp.Regexp{
	SectionSummary:        regexp.MustCompile(`(?i)^(professional\s+summary|summary|objective|profile|about\s+me)\s*:?\s*$`),
	SectionExperience:     regexp.MustCompile(`(?i)^((professional|work|relevant)\s+)?(experience|employment|career)( history)?\s*:?\s*$`),
	SectionEducation:      regexp.MustCompile(`(?i)^(education|academic( background)?|qualifications)\s*:?\s*$`),
	SectionSkills:         regexp.MustCompile(`(?i)^((technical|core|key)\s+)?(skills|competencies|technologies|expertise)\s*:?\s*$`),
	SectionCertifications: regexp.MustCompile(`(?i)^(certifications?|certificates|licenses?( & certifications?)?)\s*:?\s*$`),
}

// contactShape spots email addresses, phone numbers and profile URLs, which
// pin the segmenter to the header region.
var contactShape = regexp.MustCompile(`(?i)[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+|\(?\d{3}\)?[\s.\-]\d{3}[\s.\-]\d{4}|linkedin\.com|github\.com`)

const summaryHeuristicMinLen = 60

// Segment splits preprocessed text into the fixed section set with a single
// forward scan. If no known header ever matches, the whole document
// collapses into header/summary and downstream extractors fall back to
// scanning the full text.
func Segment(text string) map[Section]string {
	accum := map[Section][]string{}
	current := SectionHeader
	sawSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if section, ok := matchSectionHeader(trimmed); ok {
			current = section
			sawSection = true
			continue
		}

		if current == SectionHeader && !sawSection {
			if contactShape.MatchString(trimmed) {
				accum[SectionHeader] = append(accum[SectionHeader], trimmed)
				continue
			}
			// A long prose line means the header block has ended.
			if len(trimmed) >= summaryHeuristicMinLen && trimmed != strings.ToUpper(trimmed) {
				current = SectionSummary
			}
		}

		accum[current] = append(accum[current], trimmed)
	}

	result := map[Section]string{
		SectionHeader:         "",
		SectionSummary:        "",
		SectionExperience:     "",
		SectionEducation:      "",
		SectionSkills:         "",
		SectionCertifications: "",
		SectionOther:          "",
	}
	for section, lines := range accum {
		result[section] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return result
}

// matchSectionHeader reports which known section a header line opens.
func matchSectionHeader(line string) (Section, bool) {
	for _, section := range []Section{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionCertifications} {
		if sectionPatterns[section].MatchString(line) {
			return section, true
		}
	}
	return "", false
}
