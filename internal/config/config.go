// Package config provides configuration loading for the server and CLI.
// Values are layered: built-in defaults, then an optional JSON file, then
// environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-fitment/internal/llm"
	"github.com/jonathan/resume-fitment/internal/matching"
)

// Config holds everything the server and CLI need to run. All fields are
// optional; missing values fall back to defaults.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `json:"addr,omitempty"`
	// DatabaseURL is the PostgreSQL connection string. Empty runs the
	// in-memory store.
	DatabaseURL string `json:"database_url,omitempty"`

	// LLMProvider selects the enhancement backend ("gemini" or "openai").
	// Empty disables LLM enhancement and fitment analysis.
	LLMProvider string `json:"llm_provider,omitempty"`
	// LLMBaseURL overrides the provider endpoint, for OpenAI-compatible
	// gateways.
	LLMBaseURL string `json:"llm_base_url,omitempty"`
	// LLMAPIKey is read from the environment only, never from the file.
	LLMAPIKey string `json:"-"`

	// MatchWeights overrides the match score weighting when set.
	MatchWeights *matching.Weights `json:"match_weights,omitempty"`

	// Verbose enables detailed stage output.
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Addr: ":8080"}
}

// LoadFile reads configuration from a JSON file.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv reads the environment overlay. The API key variable depends on
// the selected provider; GEMINI_API_KEY wins when both are set and no
// provider is named.
func FromEnv() Config {
	cfg := Config{
		Addr:        os.Getenv("FITMENT_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LLMProvider: os.Getenv("LLM_PROVIDER"),
		LLMBaseURL:  os.Getenv("LLM_BASE_URL"),
	}
	switch cfg.LLMProvider {
	case string(llm.ProviderOpenAI):
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	case string(llm.ProviderGemini):
		cfg.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
	default:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.LLMAPIKey = key
			cfg.LLMProvider = string(llm.ProviderGemini)
		} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.LLMAPIKey = key
			cfg.LLMProvider = string(llm.ProviderOpenAI)
		}
	}
	return cfg
}

// Load builds the effective configuration: defaults, then the optional
// file, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(*fileCfg)
	}
	cfg = cfg.Merge(FromEnv())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge overlays non-empty fields of overlay onto c and returns the result.
func (c Config) Merge(overlay Config) Config {
	result := c
	if overlay.Addr != "" {
		result.Addr = overlay.Addr
	}
	if overlay.DatabaseURL != "" {
		result.DatabaseURL = overlay.DatabaseURL
	}
	if overlay.LLMProvider != "" {
		result.LLMProvider = overlay.LLMProvider
	}
	if overlay.LLMBaseURL != "" {
		result.LLMBaseURL = overlay.LLMBaseURL
	}
	if overlay.LLMAPIKey != "" {
		result.LLMAPIKey = overlay.LLMAPIKey
	}
	if overlay.MatchWeights != nil {
		result.MatchWeights = overlay.MatchWeights
	}
	if overlay.Verbose {
		result.Verbose = true
	}
	return result
}

// Validate checks value ranges and cross-field requirements.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "", string(llm.ProviderGemini), string(llm.ProviderOpenAI):
	default:
		return fmt.Errorf("config error: unknown llm_provider %q", c.LLMProvider)
	}
	if c.LLMProvider != "" && c.LLMAPIKey == "" {
		return fmt.Errorf("config error: llm_provider %q set but no API key found in environment", c.LLMProvider)
	}
	if c.MatchWeights != nil {
		w := c.MatchWeights
		for name, v := range map[string]float64{
			"skills":     w.Skills,
			"education":  w.Education,
			"experience": w.Experience,
			"keyword":    w.Keyword,
			"title":      w.Title,
		} {
			if v < 0 {
				return fmt.Errorf("config error: match weight %q must be non-negative", name)
			}
		}
	}
	return nil
}

// Weights resolves the effective match weights.
func (c *Config) Weights() matching.Weights {
	if c.MatchWeights != nil {
		return *c.MatchWeights
	}
	return matching.DefaultWeights()
}

// LLMConfig builds the provider configuration for the selected backend, or
// nil when LLM features are disabled.
func (c *Config) LLMConfig() *llm.Config {
	switch c.LLMProvider {
	case string(llm.ProviderGemini):
		return llm.DefaultGeminiConfig()
	case string(llm.ProviderOpenAI):
		cfg := llm.DefaultOpenAIConfig()
		if c.LLMBaseURL != "" {
			cfg.BaseURL = c.LLMBaseURL
		}
		return cfg
	default:
		return nil
	}
}
