package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

// secondaryKeywordPatterns pull non-skill signal words out of a job
// description: seniority, domain, soft-skill, leadership, and
// degree-requirement vocabulary.
var secondaryKeywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(senior|junior|lead|principal|staff|entry.level|mid.level)\b`),
	regexp.MustCompile(`(?i)\b(fintech|healthcare|e-?commerce|banking|insurance|retail|logistics|saas|startup|enterprise)\b`),
	regexp.MustCompile(`(?i)\b(collaborative|analytical|detail.oriented|self.starter|proactive|passionate|adaptable)\b`),
	regexp.MustCompile(`(?i)\b(mentor(?:ing|ship)?|leadership|managing|coaching|ownership|stakeholders?)\b`),
	regexp.MustCompile(`(?i)\b(bachelor'?s?|master'?s?|ph\.?d|degree|certified|certification)\b`),
}

const keywordBonusScale = 10

// keywordBonus measures what fraction of the description's secondary
// keywords appear anywhere in the resume's searchable text, on a 0-10
// scale.
func keywordBonus(resume *types.ParsedResume, jobDescription string) float64 {
	keywords := extractSecondaryKeywords(jobDescription)
	if len(keywords) == 0 {
		return 0
	}
	haystack := resume.SearchableText()
	present := 0
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			present++
		}
	}
	return math.Round(float64(present) / float64(len(keywords)) * keywordBonusScale)
}

// extractSecondaryKeywords returns the deduplicated lowercase keywords the
// pattern families find in a description.
func extractSecondaryKeywords(description string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, pattern := range secondaryKeywordPatterns {
		for _, m := range pattern.FindAllStringSubmatch(description, -1) {
			keyword := strings.ToLower(m[1])
			if !seen[keyword] {
				seen[keyword] = true
				keywords = append(keywords, keyword)
			}
		}
	}
	return keywords
}
