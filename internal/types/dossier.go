package types

// Severity classifies a red flag's hiring impact.
type Severity string

// Severity levels form a closed enum.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// RedFlag is a detected resume deficiency with an assigned severity and a
// stated hiring impact.
type RedFlag struct {
	Severity Severity `json:"severity"`
	Issue    string   `json:"issue"`
	Impact   string   `json:"impact"`
}

// CareerTrajectory summarizes where the candidate's history points.
type CareerTrajectory struct {
	Path            string   `json:"path"`
	GrowthAreas     []string `json:"growthAreas"`
	Recommendations []string `json:"recommendations"`
}

// FitmentAnalysis is the heuristic (or LLM-supplied) assessment derived
// from a resume and its job matches.
type FitmentAnalysis struct {
	OverallScore   int       `json:"overallScore"`
	Strengths      []string  `json:"strengths"`
	AreasToImprove []string  `json:"areasToImprove"`
	RedFlags       []RedFlag `json:"redFlags"`
}

// CandidateDossier is the aggregated, narrative candidate profile. It is a
// pure function of the resume, the job matches, and the public-data lookups;
// recomputed per session and never persisted.
type CandidateDossier struct {
	Summary          string           `json:"summary"`
	FitmentScore     int              `json:"fitmentScore"`
	KeyStrengths     []string         `json:"keyStrengths"`
	RedFlags         []RedFlag        `json:"redFlags"`
	CareerTrajectory CareerTrajectory `json:"careerTrajectory"`
	DataRelations    []string         `json:"dataRelations"`
}
