// Package types defines the shared data model for the resume fitment pipeline.
package types

import "strings"

// PersonalInfo holds the candidate's contact details.
// Individual fields may be empty when extraction fails; the record itself
// is always present on a ParsedResume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Education represents a single education entry in document order.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Experience represents a single work experience entry in document order.
// Period is a free-text date range (e.g. "2018 - 2021" or "2019 - Present").
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Certification represents a professional certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// UnknownName is the sentinel returned when name extraction fails.
const UnknownName = "Unknown Name"

// ParsedResume is the canonical structured candidate record produced by the
// extraction pipeline. It is always fully populated: extraction failure is
// handled by substituting a template record wholesale, never by nil fields.
type ParsedResume struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Skills         []string        `json:"skills"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
}

// EmptyFieldCount counts how many of the quality-gate conditions hold:
// placeholder name, empty email, empty phone, no skills, no education,
// no experience. The assembler falls back to template data at >= 4.
func (r *ParsedResume) EmptyFieldCount() int {
	count := 0
	if r.PersonalInfo.Name == "" || r.PersonalInfo.Name == UnknownName {
		count++
	}
	if r.PersonalInfo.Email == "" {
		count++
	}
	if r.PersonalInfo.Phone == "" {
		count++
	}
	if len(r.Skills) == 0 {
		count++
	}
	if len(r.Education) == 0 {
		count++
	}
	if len(r.Experience) == 0 {
		count++
	}
	return count
}

// NormalizeSkills de-duplicates the skill list case-insensitively and
// title-cases the first letter of each skill, preserving discovery order.
func (r *ParsedResume) NormalizeSkills() {
	seen := make(map[string]bool, len(r.Skills))
	normalized := make([]string, 0, len(r.Skills))
	for _, skill := range r.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, TitleFirst(skill))
	}
	r.Skills = normalized
}

// SearchableText concatenates personal info, education, experience,
// certifications and skills into one lowercased blob for keyword checks.
func (r *ParsedResume) SearchableText() string {
	var sb strings.Builder
	sb.WriteString(r.PersonalInfo.Name)
	sb.WriteString(" ")
	sb.WriteString(r.PersonalInfo.Location)
	for _, edu := range r.Education {
		sb.WriteString(" ")
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Institution)
	}
	for _, exp := range r.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
	}
	for _, cert := range r.Certifications {
		sb.WriteString(" ")
		sb.WriteString(cert.Name)
		sb.WriteString(" ")
		sb.WriteString(cert.Issuer)
	}
	for _, skill := range r.Skills {
		sb.WriteString(" ")
		sb.WriteString(skill)
	}
	return strings.ToLower(sb.String())
}

// TitleFirst upper-cases the first rune of s, leaving the rest untouched so
// acronyms like "AWS" and mixed-case names like "JavaScript" survive.
func TitleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
