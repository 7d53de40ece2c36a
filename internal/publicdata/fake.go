package publicdata

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/jonathan/resume-fitment/internal/types"
)

// FakeProvider simulates public data lookups with seeded randomness and an
// artificial delay. Records are a deterministic function of the candidate
// name so repeated lookups for the same resume agree with each other.
type FakeProvider struct {
	// Delay imitates network latency. Zero means no wait.
	Delay time.Duration
}

// NewFakeProvider builds a FakeProvider with a small default delay.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{Delay: 150 * time.Millisecond}
}

// Lookup generates a simulated report for the candidate.
func (p *FakeProvider) Lookup(ctx context.Context, resume *types.ParsedResume) (*Report, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	rng := rand.New(rand.NewSource(seedFor(resume.PersonalInfo.Name)))

	report := &Report{Discrepancies: []string{}}
	if rng.Intn(10) < 8 {
		report.LinkedIn = &LinkedInProfile{
			Headline:     headlineFor(resume),
			Connections:  100 + rng.Intn(900),
			Endorsements: rng.Intn(60),
		}
	}
	if rng.Intn(10) < 7 {
		report.GitHub = &GitHubProfile{
			PublicRepos:   rng.Intn(80),
			Followers:     rng.Intn(300),
			TopLanguages:  topLanguages(resume, rng),
			Contributions: rng.Intn(2000),
		}
	}
	if report.LinkedIn != nil && rng.Intn(10) < 2 {
		report.Discrepancies = append(report.Discrepancies,
			"LinkedIn headline does not mention the most recent employer on the resume")
	}
	return report, nil
}

// seedFor hashes the candidate name into a stable seed.
func seedFor(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}

// headlineFor derives a plausible headline from the most recent experience.
func headlineFor(resume *types.ParsedResume) string {
	if len(resume.Experience) > 0 && resume.Experience[0].Title != "" {
		if resume.Experience[0].Company != "" {
			return resume.Experience[0].Title + " at " + resume.Experience[0].Company
		}
		return resume.Experience[0].Title
	}
	return "Professional"
}

// topLanguages picks up to three of the resume's own skills so the fake
// record stays self-consistent.
func topLanguages(resume *types.ParsedResume, rng *rand.Rand) []string {
	if len(resume.Skills) == 0 {
		return []string{"Markdown"}
	}
	n := min(3, len(resume.Skills))
	out := make([]string, n)
	copy(out, resume.Skills[:n])
	rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
