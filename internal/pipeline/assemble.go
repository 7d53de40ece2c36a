// Package pipeline assembles a structured resume from an uploaded document.
// The assembler chains extraction, preprocessing, segmentation and the
// field extractors, then applies optional LLM enhancement and a quality
// gate. Heuristic stages never fail outward; a bad document yields a
// template record rather than an error.
package pipeline

import (
	"context"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonathan/resume-fitment/internal/extraction"
	"github.com/jonathan/resume-fitment/internal/parsing"
	"github.com/jonathan/resume-fitment/internal/types"
)

// qualityGateThreshold is the number of emptiness conditions at which an
// extraction is judged too sparse to show and template data is substituted.
const qualityGateThreshold = 4

// Enhancer upgrades a heuristic extraction using an LLM. Implementations
// must reject their own incomplete output; the assembler treats any error
// as "keep the heuristic result".
type Enhancer interface {
	EnhanceResume(ctx context.Context, rawText string, initial *types.ParsedResume) (*types.ParsedResume, error)
}

// Assembler runs the document-to-resume pipeline. The zero value is not
// usable; construct with New.
type Assembler struct {
	enhancer Enhancer
	onStage  func(stage, message string)

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithEnhancer enables the LLM enhancement stage.
func WithEnhancer(e Enhancer) Option {
	return func(a *Assembler) { a.enhancer = e }
}

// WithStageCallback registers a hook invoked as each pipeline stage starts
// or produces a notable outcome. Used by the CLI's verbose mode.
func WithStageCallback(fn func(stage, message string)) Option {
	return func(a *Assembler) { a.onStage = fn }
}

// WithRand overrides the random source used for template selection.
func WithRand(rng *rand.Rand) Option {
	return func(a *Assembler) { a.rng = rng }
}

// New builds an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Result carries the assembled resume plus how it was produced.
type Result struct {
	Resume *types.ParsedResume
	// RawText is the preprocessed document text, persisted alongside the
	// resume and reused as the enhancement prompt input.
	RawText string
	// UsedTemplate reports a quality-gate fallback to canned data.
	UsedTemplate bool
	// Enhanced reports that the LLM-enhanced extraction was accepted.
	Enhanced bool
	// Notices are human-readable caveats about degraded stages.
	Notices []string
}

// AssembleFile reads a document from disk and assembles it. File I/O
// errors are the only failures it propagates beyond Assemble's own.
func (a *Assembler) AssembleFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.Assemble(ctx, filepath.Base(path), data)
}

// Assemble runs the full pipeline over an in-memory document. It returns
// an error only for context cancellation and unrecognized file types;
// everything past extraction degrades instead of failing.
func (a *Assembler) Assemble(ctx context.Context, filename string, data []byte) (*Result, error) {
	a.emit("extract", "extracting text from "+filename)
	text, err := extraction.ExtractText(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	a.emit("preprocess", "normalizing extracted text")
	cleaned := parsing.Preprocess(text)

	a.emit("segment", "splitting into sections")
	sections := parsing.Segment(cleaned)
	scoped := func(s parsing.Section) string {
		if sections[s] != "" {
			return sections[s]
		}
		return cleaned
	}

	a.emit("extract-fields", "running field extractors")
	resume := &types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			Name:     parsing.ExtractName(scoped(parsing.SectionHeader)),
			Email:    parsing.ExtractEmail(scoped(parsing.SectionHeader)),
			Phone:    parsing.ExtractPhone(scoped(parsing.SectionHeader)),
			Location: parsing.ExtractLocation(scoped(parsing.SectionHeader)),
		},
		Skills:         parsing.ExtractSkills(cleaned, sections[parsing.SectionSkills]),
		Education:      parsing.ExtractEducation(scoped(parsing.SectionEducation)),
		Experience:     parsing.ExtractExperience(scoped(parsing.SectionExperience)),
		Certifications: parsing.ExtractCertifications(scoped(parsing.SectionCertifications)),
	}

	result := &Result{RawText: cleaned}

	if a.enhancer != nil {
		a.emit("enhance", "requesting LLM enhancement")
		enhanced, err := a.enhancer.EnhanceResume(ctx, cleaned, resume)
		if err != nil {
			log.Printf("pipeline: enhancement skipped: %v", err)
			result.Notices = append(result.Notices, "LLM enhancement unavailable, using heuristic extraction")
		} else {
			resume = enhanced
			result.Enhanced = true
		}
	}

	if resume.EmptyFieldCount() >= qualityGateThreshold {
		a.emit("quality-gate", "extraction too sparse, using template data")
		templated := a.templateResume()
		resume = &templated
		result.UsedTemplate = true
		result.Notices = append(result.Notices, "extraction was too sparse, using template data")
	}

	resume.NormalizeSkills()
	result.Resume = resume
	return result, nil
}

// templateResume draws a template record under the lock; rand.Rand is not
// safe for concurrent use and assemblers are shared across requests.
func (a *Assembler) templateResume() types.ParsedResume {
	a.mu.Lock()
	defer a.mu.Unlock()
	return types.TemplateResume(a.rng)
}

func (a *Assembler) emit(stage, message string) {
	if a.onStage != nil {
		a.onStage(stage, message)
	}
}
