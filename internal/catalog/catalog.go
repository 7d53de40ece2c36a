// Package catalog holds the fixed in-memory job listings the matching
// engine scores against. The list is build-time constant; there is no
// network or database access behind it.
package catalog

import "github.com/jonathan/resume-fitment/internal/types"

var listings = []types.JobListing{
	{
		ID:          "swe-platform",
		Title:       "Software Engineer",
		Company:     "Nimbus Labs",
		Description: "Build and operate backend services in Go and Python on AWS. You will design REST APIs, work with PostgreSQL and Redis, and own services end to end. Bachelor's degree in computer science, or equivalent experience. 3+ years of experience with distributed systems.",
		Location:    "Remote (US)",
		SalaryRange: "$130,000 - $165,000",
	},
	{
		ID:          "senior-frontend",
		Title:       "Senior Frontend Engineer",
		Company:     "Brightline",
		Description: "Own our customer-facing web app built with React, TypeScript and GraphQL. You will mentor junior engineers, drive code review culture, and partner with design. 5+ years of experience shipping production JavaScript. Bachelor's degree preferred.",
		Location:    "New York, NY",
		SalaryRange: "$150,000 - $185,000",
	},
	{
		ID:          "data-engineer",
		Title:       "Data Engineer",
		Company:     "Harborview Analytics",
		Description: "Design batch and streaming pipelines with Spark, Kafka and Airflow on GCP. Strong SQL and Python required; experience with Snowflake a plus. Minimum of 4 years building data infrastructure. Healthcare domain experience valued.",
		Location:    "Boston, MA",
		SalaryRange: "$140,000 - $170,000",
	},
	{
		ID:          "devops-engineer",
		Title:       "DevOps Engineer",
		Company:     "Stackform",
		Description: "Run our Kubernetes platform across AWS and GCP. Terraform, Helm, Prometheus and CI/CD pipelines are your daily tools. At least 3 years of infrastructure experience. Certifications such as CKA or AWS Solutions Architect are a plus.",
		Location:    "Austin, TX",
		SalaryRange: "$135,000 - $160,000",
	},
	{
		ID:          "ml-engineer",
		Title:       "Machine Learning Engineer",
		Company:     "Veridian AI",
		Description: "Train and deploy models with PyTorch and TensorFlow, productionize with Docker and Kubernetes, and build evaluation pipelines in Python. Master's degree in machine learning or a related field preferred. 2-5 years of applied ML experience.",
		Location:    "San Francisco, CA",
		SalaryRange: "$170,000 - $210,000",
	},
	{
		ID:          "eng-manager",
		Title:       "Engineering Manager",
		Company:     "Fieldnote",
		Description: "Lead a team of eight engineers building our logistics platform. You will coach, hire, run agile ceremonies, and stay close to the code (Go, PostgreSQL, AWS). 7+ years of experience including 2 in management. Strong communication and stakeholder management skills.",
		Location:    "Chicago, IL",
		SalaryRange: "$180,000 - $220,000",
	},
	{
		ID:          "qa-analyst",
		Title:       "Quality Assurance Analyst",
		Company:     "Ledgerworks",
		Description: "Own test planning and automation for our fintech product. Experience with unit testing frameworks, SQL, and CI/CD pipelines. Detail-oriented and analytical. 2 years of experience in software quality roles. Associate's degree or higher.",
		Location:    "Remote (US)",
		SalaryRange: "$85,000 - $110,000",
	},
	{
		ID:          "security-engineer",
		Title:       "Security Engineer",
		Company:     "Palisade",
		Description: "Harden our SaaS platform: penetration testing, vulnerability assessment, incident response, and SIEM tooling. Familiarity with OAuth and SAML flows. 4+ years of security engineering experience. Relevant certifications (OSCP, CISSP) are valued.",
		Location:    "Denver, CO",
		SalaryRange: "$145,000 - $175,000",
	},
}

// Listings returns a copy of the catalog so callers cannot mutate the
// backing array.
func Listings() []types.JobListing {
	out := make([]types.JobListing, len(listings))
	copy(out, listings)
	return out
}

// ByID finds a listing by its identifier.
func ByID(id string) (types.JobListing, bool) {
	for _, job := range listings {
		if job.ID == id {
			return job, true
		}
	}
	return types.JobListing{}, false
}
