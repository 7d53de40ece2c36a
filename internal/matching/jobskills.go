package matching

import (
	"github.com/jonathan/resume-fitment/internal/parsing"
)

// ExtractJobSkills pulls skill tokens out of a job description using the
// same vocabulary matcher the resume pipeline uses, so both sides of the
// comparison speak the same canonical tokens.
func ExtractJobSkills(description string) []string {
	return parsing.ExtractSkills(description, "")
}

// skillsScore is the fraction of the job's detected skills present in the
// resume, on a 0-100 scale. A job with no detected skills scores 0.
func skillsScore(resumeSkills, jobSkills []string) (score float64, matched, missing []string) {
	matched = []string{}
	missing = []string{}
	if len(jobSkills) == 0 {
		return 0, matched, missing
	}
	for _, jobSkill := range jobSkills {
		if containsSkill(resumeSkills, jobSkill) {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}
	return float64(len(matched)) / float64(len(jobSkills)) * 100, matched, missing
}
