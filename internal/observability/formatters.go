// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.PersonalInfo.Name))
	if resume.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.PersonalInfo.Email))
	}
	if resume.PersonalInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.PersonalInfo.Phone))
	}
	if resume.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", resume.PersonalInfo.Location))
	}

	if len(resume.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		sb.WriteString("  " + truncate(strings.Join(resume.Skills, ", "), 2*boxWidth) + "\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", exp.Title, exp.Company, exp.Period))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	if len(resume.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, edu := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s, %s", edu.Degree, edu.Institution))
			if edu.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Year))
			}
			sb.WriteString("\n")
		}
	}

	if len(resume.Certifications) > 0 {
		sb.WriteString("\nCertifications:\n")
		for _, cert := range resume.Certifications {
			sb.WriteString(fmt.Sprintf("  • %s", cert.Name))
			if cert.Issuer != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", cert.Issuer))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the scored job matches, best first.
func (p *Printer) PrintMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs scored: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, match.Job.Title))
		if match.Job.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", match.Job.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Fit: %d%%\n", match.FitPercentage))
		if len(match.MatchingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Matching: %s\n", truncate(strings.Join(match.MatchingSkills, ", "), 40)))
		}
		if len(match.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing:  %s\n", truncate(strings.Join(match.MissingSkills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDossier outputs the aggregated candidate dossier.
func (p *Printer) PrintDossier(dossier *types.CandidateDossier) {
	if dossier == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fitment score: %d\n", dossier.FitmentScore))
	sb.WriteString(truncate(dossier.Summary, 2*boxWidth) + "\n")

	if len(dossier.KeyStrengths) > 0 {
		sb.WriteString("\nKey strengths:\n")
		for _, s := range dossier.KeyStrengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	if len(dossier.RedFlags) > 0 {
		sb.WriteString("\nRed flags:\n")
		for _, flag := range dossier.RedFlags {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(string(flag.Severity)), flag.Issue))
		}
	}

	if dossier.CareerTrajectory.Path != "" {
		sb.WriteString(fmt.Sprintf("\nTrajectory: %s\n", truncate(dossier.CareerTrajectory.Path, 2*boxWidth)))
	}

	p.printBox("CANDIDATE DOSSIER", strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
