package matching

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-fitment/internal/types"
)

var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:or more\s*)?years?\s+(?:of\s+)?(?:relevant\s+|professional\s+|industry\s+)?experience`),
	regexp.MustCompile(`(?i)minimum\s+(?:of\s+)?(\d{1,2})\s*years?`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d{1,2})\s*years?`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*-\s*\d{1,2}\s*years?`),
}

// periodYears parses "YYYY - YYYY" and "YYYY - Present" period strings.
var periodPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|[Pp]resent|[Cc]urrent|[Nn]ow)\b`)

// industryKeywords is the fixed industry list used for the domain-overlap
// topper.
var industryKeywords = []string{
	"fintech", "healthcare", "e-commerce", "ecommerce", "banking", "insurance",
	"retail", "logistics", "telecom", "education", "gaming", "automotive",
	"aerospace", "energy", "media", "government", "biotech", "saas",
}

const (
	defaultRequiredYears = 2
	maxCandidateYears    = 20
	industryBonus        = 5
)

// experienceBonus compares the candidate's estimated years of experience
// against what the job description asks for. Raw scale is roughly 0-15:
// tiered 10/7/5 for meeting, nearly meeting, or partially meeting the
// requirement, plus a topper when resume and description share an industry
// keyword.
func experienceBonus(experience []types.Experience, jobDescription string) float64 {
	required := requiredYears(jobDescription)
	held := candidateYears(experience)

	var bonus float64
	switch {
	case held >= required:
		bonus = 10
	case held >= required-1:
		bonus = 7
	case float64(held) >= float64(required)/2:
		bonus = 5
	}

	if sharesIndustry(experience, jobDescription) {
		bonus += industryBonus
	}
	return bonus
}

// requiredYears reads the experience requirement out of a job description,
// defaulting to 2 when none is stated.
func requiredYears(description string) int {
	for _, pattern := range requiredYearsPatterns {
		if m := pattern.FindStringSubmatch(description); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}
	return defaultRequiredYears
}

// candidateYears sums per-entry durations from period strings, counting an
// unparsable period as one year, capped at 20 total.
func candidateYears(experience []types.Experience) int {
	total := 0
	currentYear := time.Now().Year()
	for _, exp := range experience {
		total += periodDuration(exp.Period, currentYear)
	}
	if total > maxCandidateYears {
		return maxCandidateYears
	}
	return total
}

// periodDuration converts one period string into whole years, minimum 1 for
// any non-empty period.
func periodDuration(period string, currentYear int) int {
	if strings.TrimSpace(period) == "" {
		return 0
	}
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return 1
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	end := currentYear
	if endYear, err := strconv.Atoi(m[2]); err == nil {
		end = endYear
	}
	if end < start {
		return 1
	}
	years := end - start
	if years == 0 {
		return 1
	}
	return years
}

// sharesIndustry reports whether any industry keyword appears in both the
// job description and some experience entry's company or description.
func sharesIndustry(experience []types.Experience, jobDescription string) bool {
	description := strings.ToLower(jobDescription)
	for _, keyword := range industryKeywords {
		if !strings.Contains(description, keyword) {
			continue
		}
		for _, exp := range experience {
			haystack := strings.ToLower(exp.Company + " " + exp.Description)
			if strings.Contains(haystack, keyword) {
				return true
			}
		}
	}
	return false
}
