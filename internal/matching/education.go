package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

// degreeLevel orders degrees so requirement checks are a single comparison.
type degreeLevel int

const (
	degreeNone degreeLevel = iota
	degreeAssociate
	degreeBachelor
	degreeMaster
	degreePhD
)

var degreePatterns = []struct {
	level   degreeLevel
	pattern *regexp.Regexp
}{
	{degreePhD, regexp.MustCompile(`(?i)\b(ph\.?d|doctorate|doctoral)\b`)},
	{degreeMaster, regexp.MustCompile(`(?i)\b(master'?s?|m\.?s\.?c?|m\.?a\.?|mba|m\.?tech)\b`)},
	{degreeBachelor, regexp.MustCompile(`(?i)\b(bachelor'?s?|b\.?s\.?c?|b\.?a\.?|b\.?e\.?|b\.?tech|undergraduate degree)\b`)},
	{degreeAssociate, regexp.MustCompile(`(?i)\b(associate'?s?( degree)?|a\.?a\.?s?)\b`)},
}

// educationBonusByLevel is the tiered award for meeting the job's stated
// degree requirement; higher requirements met are worth more.
var educationBonusByLevel = map[degreeLevel]float64{
	degreePhD:       15,
	degreeMaster:    12,
	degreeBachelor:  10,
	degreeAssociate: 8,
}

// fieldOfStudyPattern captures "degree in X" style phrases from a job
// description.
var fieldOfStudyPattern = regexp.MustCompile(`(?i)(?:degree|bachelor'?s?|master'?s?|ph\.?d)\s+in\s+([a-z][a-z ]{2,40}?)(?:[,.;)\n]|or\b|and\b|$)`)

const unstatedRequirementBonus = 5
const fieldOfStudyBonus = 5

// educationBonus scores how the candidate's education stacks up against the
// degree level the job description implies. Raw scale is roughly 0-20: a
// tiered award for meeting the stated requirement (or a flat award for
// holding a Bachelor's when the job states none), plus a topper when a
// resume degree names a field of study the description asks for.
func educationBonus(education []types.Education, jobDescription string) float64 {
	required := requiredDegreeLevel(jobDescription)
	held := highestDegreeLevel(education)

	var bonus float64
	switch {
	case required != degreeNone && held >= required:
		bonus = educationBonusByLevel[required]
	case required == degreeNone && held >= degreeBachelor:
		bonus = unstatedRequirementBonus
	}

	if matchesFieldOfStudy(education, jobDescription) {
		bonus += fieldOfStudyBonus
	}
	return bonus
}

// requiredDegreeLevel finds the highest degree level the description names.
func requiredDegreeLevel(description string) degreeLevel {
	for _, dp := range degreePatterns {
		if dp.pattern.MatchString(description) {
			return dp.level
		}
	}
	return degreeNone
}

// highestDegreeLevel finds the strongest degree across education entries.
func highestDegreeLevel(education []types.Education) degreeLevel {
	highest := degreeNone
	for _, edu := range education {
		for _, dp := range degreePatterns {
			if dp.pattern.MatchString(edu.Degree) && dp.level > highest {
				highest = dp.level
			}
		}
	}
	return highest
}

// matchesFieldOfStudy reports whether any resume degree mentions a field of
// study the job description calls out.
func matchesFieldOfStudy(education []types.Education, description string) bool {
	matches := fieldOfStudyPattern.FindAllStringSubmatch(description, -1)
	if len(matches) == 0 {
		return false
	}
	for _, edu := range education {
		degree := strings.ToLower(edu.Degree)
		for _, m := range matches {
			field := strings.TrimSpace(strings.ToLower(m[1]))
			if field != "" && strings.Contains(degree, field) {
				return true
			}
		}
	}
	return false
}
