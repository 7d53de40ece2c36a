package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fitment/internal/extraction"
	"github.com/jonathan/resume-fitment/internal/types"
)

const sampleDocument = `Jane Doe
jane.doe@example.com
555-123-4567
San Francisco, CA

SUMMARY
Experienced software engineer with a track record of delivering scalable backend systems.

EXPERIENCE
Senior Software Engineer 2019 - Present
Acme Corp
• Built microservices in Go
• Led a team of five engineers

EDUCATION
Bachelor of Science in Computer Science
State University
2015 - 2019

SKILLS
Python, Go, Docker, PostgreSQL

CERTIFICATIONS
AWS Certified Solutions Architect - 2021`

type stubEnhancer struct {
	resume *types.ParsedResume
	err    error

	called  bool
	gotRaw  string
	gotInit *types.ParsedResume
}

func (s *stubEnhancer) EnhanceResume(_ context.Context, rawText string, initial *types.ParsedResume) (*types.ParsedResume, error) {
	s.called = true
	s.gotRaw = rawText
	s.gotInit = initial
	return s.resume, s.err
}

func TestAssemble_PlainTextDocument(t *testing.T) {
	a := New()

	result, err := a.Assemble(context.Background(), "resume.txt", []byte(sampleDocument))
	require.NoError(t, err)
	require.NotNil(t, result.Resume)

	resume := result.Resume
	assert.Equal(t, "Jane Doe", resume.PersonalInfo.Name)
	assert.Equal(t, "jane.doe@example.com", resume.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", resume.PersonalInfo.Phone)
	assert.Equal(t, "San Francisco, CA", resume.PersonalInfo.Location)

	assert.Contains(t, resume.Skills, "Python")
	assert.Contains(t, resume.Skills, "Go")
	assert.Contains(t, resume.Skills, "Docker")
	assert.Contains(t, resume.Skills, "PostgreSQL")

	require.NotEmpty(t, resume.Education)
	assert.Equal(t, "Bachelor of Science in Computer Science", resume.Education[0].Degree)
	require.NotEmpty(t, resume.Experience)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	require.NotEmpty(t, resume.Certifications)

	assert.False(t, result.UsedTemplate)
	assert.False(t, result.Enhanced)
	assert.Empty(t, result.Notices)
	assert.Contains(t, result.RawText, "Jane Doe")
}

func TestAssemble_EmptyTextFallsBackToTemplate(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(1))))

	result, err := a.Assemble(context.Background(), "blank.txt", nil)
	require.NoError(t, err)
	require.NotNil(t, result.Resume)

	assert.True(t, result.UsedTemplate)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+-\d+$`), result.Resume.PersonalInfo.Name)
	assert.NotEmpty(t, result.Resume.Skills)
	assert.NotEmpty(t, result.Resume.Experience)

	require.Len(t, result.Notices, 1)
	assert.Contains(t, result.Notices[0], "template data")
}

func TestAssemble_UnsupportedExtension(t *testing.T) {
	a := New()

	_, err := a.Assemble(context.Background(), "resume.png", []byte("data"))
	require.Error(t, err)

	var unsupported *extraction.UnsupportedFileTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".png", unsupported.Extension)
}

func TestAssemble_EnhancerOutputAccepted(t *testing.T) {
	enhanced := &types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			Name:  "Jane Doe",
			Email: "jane.doe@example.com",
			Phone: "555-123-4567",
		},
		Skills: []string{"Go", "Kubernetes"},
		Experience: []types.Experience{
			{Title: "Staff Engineer", Company: "Acme Corp", Period: "2019 - Present"},
		},
	}
	stub := &stubEnhancer{resume: enhanced}
	a := New(WithEnhancer(stub))

	result, err := a.Assemble(context.Background(), "resume.txt", []byte(sampleDocument))
	require.NoError(t, err)

	assert.True(t, stub.called)
	assert.Contains(t, stub.gotRaw, "Jane Doe")
	require.NotNil(t, stub.gotInit)
	assert.Equal(t, "Jane Doe", stub.gotInit.PersonalInfo.Name)

	assert.True(t, result.Enhanced)
	assert.False(t, result.UsedTemplate)
	assert.Equal(t, "Staff Engineer", result.Resume.Experience[0].Title)
	assert.Equal(t, []string{"Go", "Kubernetes"}, result.Resume.Skills)
}

func TestAssemble_EnhancerFailureKeepsHeuristicResult(t *testing.T) {
	stub := &stubEnhancer{err: errors.New("model unavailable")}
	a := New(WithEnhancer(stub))

	result, err := a.Assemble(context.Background(), "resume.txt", []byte(sampleDocument))
	require.NoError(t, err)

	assert.False(t, result.Enhanced)
	assert.False(t, result.UsedTemplate)
	assert.Equal(t, "Jane Doe", result.Resume.PersonalInfo.Name)
	require.Len(t, result.Notices, 1)
	assert.Contains(t, result.Notices[0], "heuristic")
}

func TestAssemble_GateAppliesAfterEnhancement(t *testing.T) {
	// An enhancer that somehow returns a hollow record must not bypass the
	// quality gate.
	stub := &stubEnhancer{resume: &types.ParsedResume{}}
	a := New(WithEnhancer(stub), WithRand(rand.New(rand.NewSource(7))))

	result, err := a.Assemble(context.Background(), "resume.txt", []byte(sampleDocument))
	require.NoError(t, err)

	assert.True(t, result.UsedTemplate)
	assert.NotEmpty(t, result.Resume.Skills)
}

func TestAssemble_SkillsAreNormalized(t *testing.T) {
	doc := `John Smith
john@example.com

SKILLS
go, Go, docker, machine learning`

	a := New()
	result, err := a.Assemble(context.Background(), "resume.txt", []byte(doc))
	require.NoError(t, err)

	counts := map[string]int{}
	for _, skill := range result.Resume.Skills {
		counts[skill]++
	}
	assert.Equal(t, 1, counts["Go"])
	assert.Equal(t, 1, counts["Docker"])
	assert.Zero(t, counts["go"])
	assert.Zero(t, counts["docker"])
}

func TestAssemble_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New()
	_, err := a.Assemble(ctx, "resume.txt", []byte(sampleDocument))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssembleFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	a := New()
	result, err := a.AssembleFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Resume.PersonalInfo.Name)
}

func TestAssembleFile_MissingFile(t *testing.T) {
	a := New()
	_, err := a.AssembleFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestAssemble_StageCallbackFires(t *testing.T) {
	var stages []string
	a := New(WithStageCallback(func(stage, _ string) {
		stages = append(stages, stage)
	}))

	_, err := a.Assemble(context.Background(), "resume.txt", []byte(sampleDocument))
	require.NoError(t, err)

	assert.Contains(t, stages, "extract")
	assert.Contains(t, stages, "segment")
	assert.Contains(t, stages, "extract-fields")
}
