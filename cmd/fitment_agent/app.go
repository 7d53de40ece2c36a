package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-fitment/internal/config"
	"github.com/jonathan/resume-fitment/internal/fitment"
	"github.com/jonathan/resume-fitment/internal/llm"
	"github.com/jonathan/resume-fitment/internal/matching"
	"github.com/jonathan/resume-fitment/internal/pipeline"
	"github.com/jonathan/resume-fitment/internal/publicdata"
)

// components bundles the collaborators shared by the subcommands.
type components struct {
	assembler *pipeline.Assembler
	engine    *matching.Engine
	dossier   *fitment.DossierBuilder

	llmClient llm.Client
}

// buildComponents wires the pipeline from configuration. LLM stages are
// only attached when a provider is configured.
func buildComponents(ctx context.Context, cfg config.Config, opts ...pipeline.Option) (*components, error) {
	c := &components{
		engine: matching.NewEngine(cfg.Weights()),
		dossier: &fitment.DossierBuilder{
			Provider: publicdata.NewFakeProvider(),
		},
	}

	if llmCfg := cfg.LLMConfig(); llmCfg != nil {
		client, err := llm.NewClient(ctx, llmCfg, cfg.LLMAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		c.llmClient = client
		enhancer := llm.NewEnhancer(client)
		opts = append(opts, pipeline.WithEnhancer(enhancer))
		c.dossier.Analyzer = enhancer
	}

	c.assembler = pipeline.New(opts...)
	return c, nil
}

// close releases the LLM client if one was created.
func (c *components) close() {
	if c.llmClient != nil {
		_ = c.llmClient.Close()
	}
}
