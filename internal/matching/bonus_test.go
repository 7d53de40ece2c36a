package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-fitment/internal/types"
)

func eduWith(degree string) []types.Education {
	return []types.Education{{Degree: degree, Institution: "State University", Year: "2018"}}
}

func TestEducationBonus_TieredByRequiredLevel(t *testing.T) {
	phd := eduWith("PhD in Physics")

	assert.Equal(t, 15.0, educationBonus(phd, "PhD required for this research role"))
	assert.Equal(t, 12.0, educationBonus(phd, "Master's degree required"))
	assert.Equal(t, 10.0, educationBonus(phd, "Bachelor's degree required"))
}

func TestEducationBonus_UnmetRequirementScoresZero(t *testing.T) {
	assert.Equal(t, 0.0, educationBonus(eduWith("Bachelor of Arts"), "Master's degree required"))
}

func TestEducationBonus_FlatAwardWhenJobStatesNoRequirement(t *testing.T) {
	assert.Equal(t, 5.0, educationBonus(eduWith("Bachelor of Science"), "Write code and ship features"))
}

func TestEducationBonus_FieldOfStudyTopper(t *testing.T) {
	edu := eduWith("Bachelor of Science in Computer Science")

	assert.Equal(t, 15.0, educationBonus(edu, "Bachelor's degree in computer science, or equivalent"))
}

func TestEducationBonus_PhDNeverBelowBachelor(t *testing.T) {
	descriptions := []string{
		"PhD required",
		"Master's degree required",
		"Bachelor's degree required",
		"no stated requirement",
	}
	for _, desc := range descriptions {
		phd := educationBonus(eduWith("PhD in Biology"), desc)
		bachelor := educationBonus(eduWith("Bachelor of Science"), desc)
		assert.GreaterOrEqual(t, phd, bachelor, desc)
	}
}

func TestRequiredYears_PatternsAndDefault(t *testing.T) {
	cases := []struct {
		description string
		want        int
	}{
		{"5+ years of experience with Go", 5},
		{"minimum of 3 years in backend work", 3},
		{"at least 4 years", 4},
		{"2-4 years preferred", 2},
		{"no stated requirement", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, requiredYears(tc.description), tc.description)
	}
}

func TestCandidateYears_SumsAndCaps(t *testing.T) {
	exps := []types.Experience{
		{Period: "2010 - 2020"},
		{Period: "2000 - 2010"},
		{Period: "1990 - 2000"},
	}

	assert.Equal(t, 20, candidateYears(exps))
}

func TestPeriodDuration_Shapes(t *testing.T) {
	assert.Equal(t, 4, periodDuration("2015 - 2019", 2026))
	assert.Equal(t, 7, periodDuration("2019 - Present", 2026))
	assert.Equal(t, 1, periodDuration("a while back", 2026))
	assert.Equal(t, 1, periodDuration("2020 - 2020", 2026))
	assert.Equal(t, 0, periodDuration("", 2026))
}

func TestExperienceBonus_IndustryTopper(t *testing.T) {
	exps := []types.Experience{
		{Title: "Engineer", Company: "HealthTrack", Description: "Built healthcare scheduling tools", Period: "2018 - Present"},
	}

	with := experienceBonus(exps, "healthcare platform, 2 years of experience")
	without := experienceBonus(exps, "logistics platform, 2 years of experience")

	assert.Equal(t, 5.0, with-without)
}

func TestKeywordBonus_FractionOfTen(t *testing.T) {
	resume := &types.ParsedResume{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe"},
		Experience: []types.Experience{
			{Title: "Senior Engineer", Description: "Provided technical leadership for the platform group"},
		},
		Skills: []string{"Go"},
	}

	bonus := keywordBonus(resume, "Looking for a senior contributor to provide leadership")

	// Both extracted keywords (senior, leadership) appear in the resume.
	assert.Equal(t, 10.0, bonus)
}

func TestKeywordBonus_NoKeywordsScoresZero(t *testing.T) {
	resume := &types.ParsedResume{Skills: []string{"Go"}}

	assert.Equal(t, 0.0, keywordBonus(resume, "an unremarkable description"))
}

func TestTitleBonus_Tiers(t *testing.T) {
	exact := []types.Experience{{Title: "Senior Software Engineer II"}}
	partial := []types.Experience{{Title: "Software Engineer"}}
	unrelated := []types.Experience{{Title: "Pastry Chef"}}

	assert.Equal(t, 10.0, titleBonus(exact, "Software Engineer"))
	assert.Greater(t, titleBonus(partial, "Software Engineer, Platform"), 0.0)
	assert.Equal(t, 0.0, titleBonus(unrelated, "Software Engineer"))
}

func TestNormalizeTitle_StripsModifiersAndOrdinals(t *testing.T) {
	assert.Equal(t, "software engineer", normalizeTitle("Sr. Software Engineer III"))
	assert.Equal(t, "software engineer", normalizeTitle("Software Engineer 2"))
}
