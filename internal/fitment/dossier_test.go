package fitment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fitment/internal/publicdata"
	"github.com/jonathan/resume-fitment/internal/types"
)

type stubAnalyzer struct {
	analysis *types.FitmentAnalysis
	err      error
	gotJobs  int
}

func (s *stubAnalyzer) AnalyzeFitment(_ context.Context, _ *types.ParsedResume, matches []types.JobMatch) (*types.FitmentAnalysis, error) {
	s.gotJobs = len(matches)
	return s.analysis, s.err
}

func TestDossierBuilder_HeuristicOnly(t *testing.T) {
	builder := &DossierBuilder{}
	matches := []types.JobMatch{matchWithFit(70), matchWithFit(50)}

	dossier, err := builder.Build(context.Background(), completeResume(), matches)

	require.NoError(t, err)
	assert.Equal(t, 60, dossier.FitmentScore)
	assert.Contains(t, dossier.Summary, "Jane Doe")
	assert.NotEmpty(t, dossier.KeyStrengths)
	assert.Empty(t, dossier.RedFlags)
	assert.Contains(t, dossier.CareerTrajectory.Path, "Senior Engineer")
	assert.NotNil(t, dossier.DataRelations)
}

func TestDossierBuilder_AnalyzerTakesPrecedence(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &types.FitmentAnalysis{
		OverallScore: 88,
		Strengths:    []string{"Exceptional systems depth"},
	}}
	builder := &DossierBuilder{Analyzer: analyzer}

	dossier, err := builder.Build(context.Background(), completeResume(), []types.JobMatch{matchWithFit(10)})

	require.NoError(t, err)
	assert.Equal(t, 88, dossier.FitmentScore)
	assert.Equal(t, []string{"Exceptional systems depth"}, dossier.KeyStrengths)
	// Deterministic red flag checks still apply under the analyzer path.
	assert.Empty(t, dossier.RedFlags)
}

func TestDossierBuilder_AnalyzerErrorFallsBack(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("model offline")}
	builder := &DossierBuilder{Analyzer: analyzer}
	matches := []types.JobMatch{matchWithFit(40)}

	dossier, err := builder.Build(context.Background(), completeResume(), matches)

	require.NoError(t, err)
	assert.Equal(t, 40, dossier.FitmentScore)
	assert.NotEmpty(t, dossier.KeyStrengths)
}

func TestDossierBuilder_TrimsMatchesForAnalyzer(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("ignored")}
	builder := &DossierBuilder{Analyzer: analyzer}
	matches := []types.JobMatch{
		matchWithFit(90), matchWithFit(80), matchWithFit(70), matchWithFit(60),
	}

	_, err := builder.Build(context.Background(), completeResume(), matches)

	require.NoError(t, err)
	assert.Equal(t, 3, analyzer.gotJobs)
}

func TestDossierBuilder_IncludesPublicDataRelations(t *testing.T) {
	builder := &DossierBuilder{Provider: &publicdata.FakeProvider{}}

	dossier, err := builder.Build(context.Background(), completeResume(), nil)

	require.NoError(t, err)
	assert.NotNil(t, dossier.DataRelations)
}

func TestDossierBuilder_CancelledContext(t *testing.T) {
	builder := &DossierBuilder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.Build(ctx, completeResume(), nil)

	assert.ErrorIs(t, err, context.Canceled)
}
