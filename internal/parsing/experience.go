package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

// expLineClass enumerates how a line inside the experience region reads.
type expLineClass int

const (
	expLineOther expLineClass = iota
	expLineEntryStart
	expLineBullet
	expLineSectionExit
)

var (
	titleWords = regexp.MustCompile(`(?i)\b(senior|junior|lead|principal|staff|chief|head|director|manager|engineer|developer|architect|analyst|consultant|designer|administrator|specialist|scientist|intern|officer|coordinator|supervisor|president|vp)\b`)

	// Numeric year ranges and "Month Year - Month Year/Present" shapes.
	yearRangePattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*[-–—to]+\s*(19\d{2}|20\d{2}|[Pp]resent|[Cc]urrent|[Nn]ow)\b`)
	monthRangePattern = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\s*[-–—to]+\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|present|current|now)`)

	parentheticalPattern = regexp.MustCompile(`^(.*)\(([^)]+)\)\s*$`)
	embeddedRange        = regexp.MustCompile(`[,|]?\s*((19\d{2}|20\d{2})\s*[-–—to]+\s*(19\d{2}|20\d{2}|[Pp]resent))\s*$`)

	expExitPattern = regexp.MustCompile(`(?i)^(education|academic( background)?|skills|technical skills|certifications?|projects|summary|references)\s*:?\s*$`)
)

const descriptionMinLen = 50

// defaultExperience is the placeholder entry produced when nothing is found.
var defaultExperience = types.Experience{
	Title:       "Professional",
	Company:     "Company",
	Period:      "2020 - Present",
	Description: "",
}

// ExtractExperience scans text for work history entries. A line carrying
// both a title-like token and a date range starts a new entry; following
// plain lines fill the company until the first bullet; bullets and long
// prose lines accumulate into the description. Produces one canonical
// placeholder entry when nothing is found.
func ExtractExperience(text string) []types.Experience {
	var entries []types.Experience
	var current *types.Experience
	var description []string
	sawBullet := false

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(description, "\n")
		entries = append(entries, finalizeExperience(*current))
		current = nil
		description = nil
		sawBullet = false
	}

	for _, line := range nonEmptyLines(text) {
		switch classifyExpLine(line) {
		case expLineSectionExit:
			if current != nil {
				flush()
				return fallbackIfEmpty(entries)
			}
		case expLineEntryStart:
			flush()
			period := findDateRange(line)
			title := strings.TrimSpace(strings.Trim(strings.Replace(line, period, "", 1), " -–—|,"))
			current = &types.Experience{Title: title, Period: period}
		case expLineBullet:
			if current == nil {
				continue
			}
			sawBullet = true
			description = append(description, "• "+strings.TrimPrefix(line, "• "))
		default:
			if current == nil {
				continue
			}
			switch {
			case !sawBullet && current.Company == "" && len(line) < descriptionMinLen:
				current.Company = line
			case len(line) >= descriptionMinLen:
				description = append(description, line)
			}
		}
	}
	flush()

	return fallbackIfEmpty(entries)
}

// classifyExpLine assigns a line to exactly one class.
func classifyExpLine(line string) expLineClass {
	switch {
	case expExitPattern.MatchString(line):
		return expLineSectionExit
	case strings.HasPrefix(line, "• "):
		return expLineBullet
	case titleWords.MatchString(line) && findDateRange(line) != "":
		return expLineEntryStart
	default:
		return expLineOther
	}
}

// findDateRange returns the first date range found in a line, or "".
func findDateRange(line string) string {
	if m := monthRangePattern.FindString(line); m != "" {
		return m
	}
	return yearRangePattern.FindString(line)
}

// finalizeExperience applies the post-pass splits: a parenthetical in the
// title becomes the company when none was captured, a date range embedded in
// the company becomes the period when none was captured, and description
// bullets each sit on their own line with a single marker.
func finalizeExperience(exp types.Experience) types.Experience {
	if m := parentheticalPattern.FindStringSubmatch(exp.Title); m != nil && exp.Company == "" {
		exp.Title = strings.TrimSpace(m[1])
		exp.Company = strings.TrimSpace(m[2])
	}
	if m := embeddedRange.FindStringSubmatch(exp.Company); m != nil && exp.Period == "" {
		exp.Period = strings.TrimSpace(m[1])
		exp.Company = strings.TrimSpace(strings.TrimSuffix(exp.Company, m[0]))
	}
	exp.Period = normalizePeriod(exp.Period)
	exp.Description = normalizeBullets(exp.Description)
	return exp
}

// normalizePeriod standardizes separators to " - ".
func normalizePeriod(period string) string {
	period = regexp.MustCompile(`\s*[-–—]+\s*|\s+to\s+`).ReplaceAllString(period, " - ")
	return strings.TrimSpace(period)
}

// normalizeBullets ensures every bullet sits on its own line with one marker.
func normalizeBullets(desc string) string {
	if desc == "" {
		return ""
	}
	var out []string
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "•") {
			out = append(out, "• "+strings.TrimSpace(strings.TrimLeft(line, "• ")))
		} else {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func fallbackIfEmpty(entries []types.Experience) []types.Experience {
	if len(entries) == 0 {
		return []types.Experience{defaultExperience}
	}
	return entries
}
