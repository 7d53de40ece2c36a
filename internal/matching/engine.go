package matching

import (
	"context"
	"math"
	"sort"

	"github.com/jonathan/resume-fitment/internal/types"
)

// Weights holds the combination weights for the five sub-scores. The
// bonuses deliberately keep their raw 0-20/0-15/0-10 scales when weighted;
// preserving that arithmetic keeps scores reproducible against historical
// results, and exposing the weights lets a deployment renormalize if it
// wants to.
type Weights struct {
	Skills     float64 `json:"skills"`
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Keyword    float64 `json:"keyword"`
	Title      float64 `json:"title"`
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.60,
		Education:  0.15,
		Experience: 0.15,
		Keyword:    0.05,
		Title:      0.05,
	}
}

// Engine scores resumes against job listings. Construct once and reuse;
// the zero value is not usable.
type Engine struct {
	weights Weights
}

// NewEngine builds an Engine with the given weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// MatchAll scores the resume against every listing and returns the matches
// sorted by fit percentage, highest first. Ties keep catalog order. The
// context is checked between listings so large catalogs can be abandoned.
func (e *Engine) MatchAll(ctx context.Context, resume *types.ParsedResume, jobs []types.JobListing) ([]types.JobMatch, error) {
	matches := make([]types.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches = append(matches, e.Match(resume, job))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FitPercentage > matches[j].FitPercentage
	})
	return matches, nil
}

// Match scores the resume against a single listing.
func (e *Engine) Match(resume *types.ParsedResume, job types.JobListing) types.JobMatch {
	jobSkills := ExtractJobSkills(job.Description)
	skills, matched, missing := skillsScore(resume.Skills, jobSkills)

	score := skills*e.weights.Skills +
		educationBonus(resume.Education, job.Description)*e.weights.Education +
		experienceBonus(resume.Experience, job.Description)*e.weights.Experience +
		keywordBonus(resume, job.Description)*e.weights.Keyword +
		titleBonus(resume.Experience, job.Title)*e.weights.Title

	return types.JobMatch{
		Job:            job,
		FitPercentage:  int(math.Round(math.Min(100, score))),
		MatchingSkills: matched,
		MissingSkills:  missing,
	}
}
