package fitment

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-fitment/internal/publicdata"
	"github.com/jonathan/resume-fitment/internal/types"
)

// Analyzer is the optional richer analysis source, normally backed by a
// language model. A nil Analyzer or an analyzer error falls back to the
// heuristic path without surfacing the failure.
type Analyzer interface {
	AnalyzeFitment(ctx context.Context, resume *types.ParsedResume, matches []types.JobMatch) (*types.FitmentAnalysis, error)
}

// DossierBuilder assembles candidate dossiers. Both collaborators are
// optional; the zero value produces a purely heuristic dossier.
type DossierBuilder struct {
	Analyzer Analyzer
	Provider publicdata.Provider
}

// Build produces the candidate dossier. The analyzer call and the public
// data lookup run concurrently; neither failing aborts the build, the
// dossier just degrades to heuristic content.
func (b *DossierBuilder) Build(ctx context.Context, resume *types.ParsedResume, matches []types.JobMatch) (*types.CandidateDossier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var analysis *types.FitmentAnalysis
	var report *publicdata.Report

	g, gctx := errgroup.WithContext(ctx)
	if b.Analyzer != nil {
		g.Go(func() error {
			result, err := b.Analyzer.AnalyzeFitment(gctx, resume, topMatches(matches))
			if err != nil {
				log.Printf("fitment: analyzer unavailable, using heuristics: %v", err)
				return nil
			}
			analysis = result
			return nil
		})
	}
	if b.Provider != nil {
		g.Go(func() error {
			result, err := b.Provider.Lookup(gctx, resume)
			if err != nil {
				log.Printf("fitment: public data lookup failed: %v", err)
				return nil
			}
			report = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	heuristic := Analyze(resume, matches)
	if analysis == nil || len(analysis.Strengths) == 0 {
		analysis = heuristic
	} else if len(analysis.RedFlags) == 0 {
		// The deterministic completeness checks always apply.
		analysis.RedFlags = heuristic.RedFlags
	}

	return &types.CandidateDossier{
		Summary:          summaryLine(resume, analysis.OverallScore),
		FitmentScore:     analysis.OverallScore,
		KeyStrengths:     analysis.Strengths,
		RedFlags:         analysis.RedFlags,
		CareerTrajectory: trajectory(resume, analysis),
		DataRelations:    dataRelations(report),
	}, nil
}

// topMatches trims the match list to what the analyzer prompt carries.
func topMatches(matches []types.JobMatch) []types.JobMatch {
	if len(matches) > 3 {
		return matches[:3]
	}
	return matches
}

// summaryLine renders the one-sentence dossier headline.
func summaryLine(resume *types.ParsedResume, score int) string {
	title := "professional"
	if len(resume.Experience) > 0 && resume.Experience[0].Title != "" {
		title = resume.Experience[0].Title
	}
	return fmt.Sprintf("%s, %s with %d listed skills; overall fitment %d%%",
		resume.PersonalInfo.Name, strings.ToLower(title), len(resume.Skills), score)
}

// trajectory derives the career path narrative from experience order and
// reuses the improvement areas as growth areas.
func trajectory(resume *types.ParsedResume, analysis *types.FitmentAnalysis) types.CareerTrajectory {
	var titles []string
	for i := len(resume.Experience) - 1; i >= 0; i-- {
		if t := strings.TrimSpace(resume.Experience[i].Title); t != "" {
			titles = append(titles, t)
		}
	}
	path := strings.Join(titles, " → ")
	if path == "" {
		path = "No established trajectory yet"
	}
	return types.CareerTrajectory{
		Path:            path,
		GrowthAreas:     analysis.AreasToImprove,
		Recommendations: recommendations(analysis),
	}
}

// recommendations picks forward-looking advice from the analysis.
func recommendations(analysis *types.FitmentAnalysis) []string {
	recs := []string{"Tailor the resume summary to each application"}
	if analysis.OverallScore < 50 {
		recs = append(recs, "Target roles with closer skill overlap to raise match quality")
	}
	return recs
}

// dataRelations turns the public data report into sentences relating the
// external records to the resume.
func dataRelations(report *publicdata.Report) []string {
	relations := []string{}
	if report == nil {
		return relations
	}
	if report.LinkedIn != nil {
		relations = append(relations, fmt.Sprintf(
			"LinkedIn profile found: %q with %d connections", report.LinkedIn.Headline, report.LinkedIn.Connections))
	}
	if report.GitHub != nil {
		relations = append(relations, fmt.Sprintf(
			"GitHub activity: %d public repositories, top languages %s",
			report.GitHub.PublicRepos, strings.Join(report.GitHub.TopLanguages, ", ")))
	}
	relations = append(relations, report.Discrepancies...)
	return relations
}
