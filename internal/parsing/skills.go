package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

// skillVocabulary is the static catalog of known skill tokens, grouped by
// rough category. Matching is case-insensitive on word boundaries; the
// canonical casing listed here is what gets reported.
var skillVocabulary = []string{
	// Languages
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "Perl", "R", "MATLAB",
	"SQL", "HTML", "CSS", "Bash", "PowerShell",
	// Frameworks and libraries
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"Spring", "Spring Boot", "Rails", ".NET", "Laravel", "FastAPI", "Next.js",
	"jQuery", "Redux", "GraphQL", "REST", "gRPC",
	// Data
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
	"DynamoDB", "Oracle", "SQLite", "Kafka", "RabbitMQ", "Spark", "Hadoop",
	"Snowflake", "Airflow", "Pandas", "NumPy", "TensorFlow", "PyTorch",
	"Machine Learning", "Deep Learning", "Data Analysis", "NLP",
	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "Terraform",
	"Ansible", "Jenkins", "CircleCI", "GitHub Actions", "CI/CD", "Linux",
	"Nginx", "Serverless", "Lambda", "CloudFormation", "Helm", "Prometheus",
	"Grafana",
	// Practices and tools
	"Git", "Agile", "Scrum", "Kanban", "Jira", "TDD", "Unit Testing",
	"Microservices", "Design Patterns", "OOP", "Functional Programming",
	"Code Review", "Pair Programming",
	// Security
	"Penetration Testing", "Network Security", "Cryptography", "OAuth", "SAML",
	"Vulnerability Assessment", "SIEM", "Incident Response",
	// Soft skills
	"Leadership", "Communication", "Project Management", "Problem Solving",
	"Team Management", "Mentoring", "Stakeholder Management",
	"Public Speaking", "Negotiation",
}

var (
	skillDelimiters = regexp.MustCompile(`[,;:•|/]+`)
	bulletLine      = regexp.MustCompile(`(?m)^• (.+)$`)
	pureDigits      = regexp.MustCompile(`^\d+$`)

	// vocabularyPatterns is built once from skillVocabulary.
	vocabularyPatterns = buildVocabularyPatterns()
)

type vocabularyPattern struct {
	canonical string
	pattern   *regexp.Regexp
}

func buildVocabularyPatterns() []vocabularyPattern {
	patterns := make([]vocabularyPattern, 0, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		escaped := regexp.QuoteMeta(strings.ToLower(skill))
		// Word boundaries don't sit well next to symbols like "+" or "#",
		// so anchor on non-alphanumeric neighbors instead.
		patterns = append(patterns, vocabularyPattern{
			canonical: skill,
			pattern:   regexp.MustCompile(`(?i)(^|[^a-z0-9])` + escaped + `($|[^a-z0-9+#.])`),
		})
	}
	return patterns
}

// ExtractSkills unions two strategies: a vocabulary match over the whole
// text (including bullet lines), and section-scoped tokenization that keeps
// plausible ad-hoc tokens from a detected skills section even when they are
// absent from the vocabulary. Output is deduplicated case-insensitively in
// discovery order.
func ExtractSkills(fullText, skillsSection string) []string {
	seen := make(map[string]bool)
	var skills []string
	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return
		}
		key := strings.ToLower(skill)
		if seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, types.TitleFirst(skill))
	}

	// (a) Vocabulary scan over the full text.
	lowered := strings.ToLower(fullText)
	for _, vp := range vocabularyPatterns {
		if vp.pattern.MatchString(lowered) {
			add(vp.canonical)
		}
	}

	// (b) Section-scoped tokenization: delimiter-split tokens of plausible
	// length count as skills even outside the vocabulary.
	for _, line := range strings.Split(skillsSection, "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "• ")
		for _, token := range skillDelimiters.Split(line, -1) {
			token = strings.TrimSpace(token)
			if len(token) < 3 || len(token) > 30 || pureDigits.MatchString(token) {
				continue
			}
			if strings.Count(token, " ") > 3 {
				continue
			}
			add(token)
		}
	}

	// Bullet lines elsewhere get another vocabulary pass; cheap because the
	// full-text scan already recorded vocabulary hits, but ad-hoc bullet
	// phrasing ("Expert in Kubernetes administration") may still carry
	// vocabulary terms missed when fullText was only a section slice.
	for _, m := range bulletLine.FindAllStringSubmatch(fullText, -1) {
		line := strings.ToLower(m[1])
		for _, vp := range vocabularyPatterns {
			if vp.pattern.MatchString(line) {
				add(vp.canonical)
			}
		}
	}

	if skills == nil {
		return []string{}
	}
	return skills
}
