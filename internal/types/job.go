package types

// JobListing is a static catalog entry. Listings are loaded from a fixed
// in-memory list at build time and never mutated at runtime.
type JobListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
}

// JobMatch is the ephemeral result of scoring one resume against one
// listing. Recomputed on every match run, never persisted.
type JobMatch struct {
	Job            JobListing `json:"job"`
	FitPercentage  int        `json:"fitPercentage"`
	MatchingSkills []string   `json:"matchingSkills"`
	MissingSkills  []string   `json:"missingSkills"`
}
