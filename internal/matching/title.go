package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

var (
	seniorityModifiers = regexp.MustCompile(`(?i)\b(senior|junior|jr|sr|lead|principal|staff|chief|head|associate|assistant|entry.level|mid.level)\b`)
	ordinalSuffixes    = regexp.MustCompile(`(?i)\b(i{1,3}|iv|v|vi{0,3}|\d+(?:st|nd|rd|th)?)\s*$`)
	titlePunctuation   = regexp.MustCompile(`[^a-z0-9 ]+`)
	titleSpaces        = regexp.MustCompile(`\s+`)
)

const titleBonusScale = 10

// titleBonus measures how closely the candidate's past job titles resemble
// the listing's title, on a 0-10 scale: the best per-entry similarity times
// ten, rounded.
func titleBonus(experience []types.Experience, jobTitle string) float64 {
	target := normalizeTitle(jobTitle)
	if target == "" {
		return 0
	}
	best := 0.0
	for _, exp := range experience {
		if sim := titleSimilarity(normalizeTitle(exp.Title), target); sim > best {
			best = sim
		}
	}
	return math.Round(best * titleBonusScale)
}

// normalizeTitle strips seniority modifiers, trailing ordinals and roman
// numerals, and punctuation, lowercasing what remains.
func normalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = titlePunctuation.ReplaceAllString(t, " ")
	t = seniorityModifiers.ReplaceAllString(t, " ")
	t = ordinalSuffixes.ReplaceAllString(t, " ")
	return strings.TrimSpace(titleSpaces.ReplaceAllString(t, " "))
}

// titleSimilarity scores two normalized titles in [0,1]: exact match is
// 1.0, substring containment scores 0.8 scaled by length ratio, anything
// else scores by shared word count.
func titleSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return 0.8 * float64(shorter) / float64(longer)
	}

	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}
	shared := 0
	for _, w := range wordsB {
		if setA[w] {
			shared++
		}
	}
	return float64(2*shared) / float64(len(wordsA)+len(wordsB))
}
