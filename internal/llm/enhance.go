package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-fitment/internal/prompts"
	"github.com/jonathan/resume-fitment/internal/schemas"
	"github.com/jonathan/resume-fitment/internal/types"
)

// Enhancer wraps a Client with the two structured call sites the pipeline
// uses: resume enhancement and fitment analysis. Both validate the model's
// JSON against a schema before trusting it; any failure is returned to the
// caller, who falls back to the heuristic result.
type Enhancer struct {
	client Client
}

// NewEnhancer builds an Enhancer around an existing client.
func NewEnhancer(client Client) *Enhancer {
	return &Enhancer{client: client}
}

// EnhanceResume asks the model to correct and complete a heuristic
// extraction given the raw text it came from. The output is accepted only
// when it carries a non-empty skills list and personal info; anything less
// is an error so the caller keeps the heuristic record.
func (e *Enhancer) EnhanceResume(ctx context.Context, rawText string, initial *types.ParsedResume) (*types.ParsedResume, error) {
	template, err := prompts.Get("enhancement.json", "enhance-resume")
	if err != nil {
		return nil, err
	}
	initialJSON, err := json.Marshal(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{
		"RawText":    rawText,
		"Extraction": string(initialJSON),
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("enhancement call failed: %w", err)
	}
	if err := schemas.Validate(schemas.SchemaResume, raw); err != nil {
		return nil, fmt.Errorf("enhancement output rejected: %w", err)
	}

	var enhanced types.ParsedResume
	if err := json.Unmarshal([]byte(raw), &enhanced); err != nil {
		return nil, fmt.Errorf("failed to decode enhancement: %w", err)
	}
	if len(enhanced.Skills) == 0 || enhanced.PersonalInfo.Name == "" {
		return nil, fmt.Errorf("enhancement output incomplete: missing skills or personal info")
	}
	return &enhanced, nil
}

// AnalyzeFitment asks the model to assess the candidate against their top
// matched roles. Satisfies the fitment.Analyzer interface.
func (e *Enhancer) AnalyzeFitment(ctx context.Context, resume *types.ParsedResume, matches []types.JobMatch) (*types.FitmentAnalysis, error) {
	template, err := prompts.Get("fitment.json", "analyze-fitment")
	if err != nil {
		return nil, err
	}
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}
	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("failed to encode matches: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{
		"Resume":  string(resumeJSON),
		"Matches": string(matchesJSON),
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("fitment analysis call failed: %w", err)
	}
	if err := schemas.Validate(schemas.SchemaFitment, raw); err != nil {
		return nil, fmt.Errorf("fitment analysis output rejected: %w", err)
	}

	var analysis types.FitmentAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode fitment analysis: %w", err)
	}
	return &analysis, nil
}
