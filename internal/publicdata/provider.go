// Package publicdata defines the external profile lookup boundary. The only
// shipped implementation is an explicit fake that generates plausible
// records from a seed; it exists so the dossier builder has a stable
// interface to call and tests have a deterministic collaborator.
package publicdata

import (
	"context"

	"github.com/jonathan/resume-fitment/internal/types"
)

// LinkedInProfile is the shape of a simulated LinkedIn lookup result.
type LinkedInProfile struct {
	Headline    string `json:"headline"`
	Connections int    `json:"connections"`
	Endorsements int   `json:"endorsements"`
}

// GitHubProfile is the shape of a simulated GitHub lookup result.
type GitHubProfile struct {
	PublicRepos   int      `json:"publicRepos"`
	Followers     int      `json:"followers"`
	TopLanguages  []string `json:"topLanguages"`
	Contributions int      `json:"contributions"`
}

// Report aggregates whatever the provider found. Either profile may be nil
// when the lookup produced nothing.
type Report struct {
	LinkedIn      *LinkedInProfile `json:"linkedIn,omitempty"`
	GitHub        *GitHubProfile   `json:"gitHub,omitempty"`
	Discrepancies []string         `json:"discrepancies"`
}

// Provider looks up public data for a candidate. Implementations must honor
// context cancellation and must not mutate the resume.
type Provider interface {
	Lookup(ctx context.Context, resume *types.ParsedResume) (*Report, error)
}
