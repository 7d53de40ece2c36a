// Package fitment turns a parsed resume and its job matches into candidate
// analysis: an overall score, strength and improvement sentences, red
// flags, and the full dossier. The heuristic path here is fully
// deterministic; a richer LLM analysis takes precedence when available.
package fitment

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

const topMatchesConsidered = 5

// OverallScore is the rounded mean fit percentage over the top five
// matches, or zero when there are none.
func OverallScore(matches []types.JobMatch) int {
	if len(matches) == 0 {
		return 0
	}
	n := min(len(matches), topMatchesConsidered)
	total := 0
	for _, m := range matches[:n] {
		total += m.FitPercentage
	}
	return int(math.Round(float64(total) / float64(n)))
}

// Strengths derives up to five strength sentences: the three most
// recurring matching skills, the highest-listed education entry, and the
// employer history, padded with generic sentences when thin.
func Strengths(resume *types.ParsedResume, matches []types.JobMatch) []string {
	var strengths []string

	if top := recurringSkills(matches, func(m types.JobMatch) []string { return m.MatchingSkills }, len(matches)); len(top) > 0 {
		strengths = append(strengths,
			fmt.Sprintf("Strong demand for your skills: %s appear across multiple matched roles", joinWithAnd(top)))
	}
	if len(resume.Education) > 0 && resume.Education[0].Degree != "" {
		strengths = append(strengths,
			fmt.Sprintf("Solid educational foundation with %s", resume.Education[0].Degree))
	}
	if employers := employerList(resume.Experience); employers != "" {
		strengths = append(strengths,
			fmt.Sprintf("Professional experience at %s", employers))
	}

	for _, filler := range []string{
		"Diverse skill set applicable across several roles",
		"Professional certifications strengthen the profile",
	} {
		if len(strengths) >= 3 {
			break
		}
		strengths = append(strengths, filler)
	}
	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

// AreasToImprove derives up to three improvement sentences: the most
// recurring missing skills across the top matches, a degree-gap suggestion,
// and generic filler when thin.
func AreasToImprove(resume *types.ParsedResume, matches []types.JobMatch) []string {
	var areas []string

	if top := recurringSkills(matches, func(m types.JobMatch) []string { return m.MissingSkills }, topMatchesConsidered); len(top) > 0 {
		areas = append(areas,
			fmt.Sprintf("Consider developing %s, which top matched roles ask for", joinWithAnd(top)))
	}
	if gap := degreeGap(resume, matches); gap != "" {
		areas = append(areas, gap)
	}

	for _, filler := range []string{
		"Quantify achievements in experience descriptions with concrete metrics",
		"Add certifications relevant to your target roles",
	} {
		if len(areas) >= 3 {
			break
		}
		areas = append(areas, filler)
	}
	return areas
}

// RedFlags runs the deterministic completeness checks. A fully populated
// resume yields an empty, non-nil list.
func RedFlags(resume *types.ParsedResume) []types.RedFlag {
	flags := []types.RedFlag{}
	if resume.PersonalInfo.Email == "" {
		flags = append(flags, types.RedFlag{
			Severity: types.SeverityHigh,
			Issue:    "Missing email address",
			Impact:   "Recruiters have no way to contact the candidate",
		})
	}
	if resume.PersonalInfo.Phone == "" {
		flags = append(flags, types.RedFlag{
			Severity: types.SeverityMedium,
			Issue:    "Missing phone number",
			Impact:   "Limits contact options for scheduling interviews",
		})
	}
	if len(resume.Skills) == 0 {
		flags = append(flags, types.RedFlag{
			Severity: types.SeverityHigh,
			Issue:    "No skills listed",
			Impact:   "Resume will not surface in skill-based matching",
		})
	}
	if len(resume.Education) == 0 {
		flags = append(flags, types.RedFlag{
			Severity: types.SeverityMedium,
			Issue:    "No education history",
			Impact:   "Roles with degree requirements will screen the resume out",
		})
	}
	if len(resume.Experience) == 0 {
		flags = append(flags, types.RedFlag{
			Severity: types.SeverityHigh,
			Issue:    "No work experience listed",
			Impact:   "Most roles require demonstrable professional history",
		})
	}
	return flags
}

// Analyze bundles the heuristic outputs into one FitmentAnalysis.
func Analyze(resume *types.ParsedResume, matches []types.JobMatch) *types.FitmentAnalysis {
	return &types.FitmentAnalysis{
		OverallScore:   OverallScore(matches),
		Strengths:      Strengths(resume, matches),
		AreasToImprove: AreasToImprove(resume, matches),
		RedFlags:       RedFlags(resume),
	}
}

// recurringSkills counts skill occurrences across the first n matches and
// returns the top three by frequency, ties broken alphabetically so output
// is stable.
func recurringSkills(matches []types.JobMatch, pick func(types.JobMatch) []string, n int) []string {
	counts := map[string]int{}
	if n > len(matches) {
		n = len(matches)
	}
	for _, m := range matches[:n] {
		for _, skill := range pick(m) {
			counts[skill]++
		}
	}
	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return skills[i] < skills[j]
	})
	if len(skills) > 3 {
		skills = skills[:3]
	}
	return skills
}

// degreeGap suggests further education when a top match asks for an
// advanced degree the candidate does not hold.
func degreeGap(resume *types.ParsedResume, matches []types.JobMatch) string {
	holdsAdvanced := false
	for _, edu := range resume.Education {
		lower := strings.ToLower(edu.Degree)
		if strings.Contains(lower, "master") || strings.Contains(lower, "phd") ||
			strings.Contains(lower, "ph.d") || strings.Contains(lower, "doctor") {
			holdsAdvanced = true
		}
	}
	if holdsAdvanced {
		return ""
	}
	n := min(len(matches), topMatchesConsidered)
	for _, m := range matches[:n] {
		lower := strings.ToLower(m.Job.Description)
		if strings.Contains(lower, "master") || strings.Contains(lower, "phd") ||
			strings.Contains(lower, "ph.d") || strings.Contains(lower, "doctorate") {
			return "An advanced degree would open up several of your top matched roles"
		}
	}
	return ""
}

// employerList joins distinct company names in resume order.
func employerList(experience []types.Experience) string {
	seen := map[string]bool{}
	var companies []string
	for _, exp := range experience {
		company := strings.TrimSpace(exp.Company)
		if company == "" || seen[strings.ToLower(company)] {
			continue
		}
		seen[strings.ToLower(company)] = true
		companies = append(companies, company)
	}
	return strings.Join(companies, ", ")
}

// joinWithAnd renders ["a","b","c"] as "a, b and c".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
