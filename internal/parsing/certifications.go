package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitment/internal/types"
)

var (
	certWords       = regexp.MustCompile(`(?i)\b(certifications?|certified|certificate|licensed?|credential|accreditation)\b`)
	certHeaderLine  = regexp.MustCompile(`(?i)^(certifications?|certificates|licenses?( & certifications?)?)\s*:?\s*$`)
	certYearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	certIssuerSplit = regexp.MustCompile(`(?i)^(.*?)\s+(?:by|from|[-–—|])\s+(.+)$`)
	certExitPattern = regexp.MustCompile(`(?i)^(education|academic( background)?|skills|technical skills|experience|work experience|professional experience|employment|projects|summary|references)\s*:?\s*$`)
)

// knownIssuers are certification providers recognized when the issuer must
// be split out of the certification name.
var knownIssuers = []string{
	"AWS", "Amazon Web Services", "Microsoft", "Google", "Cisco", "PMI",
	"CompTIA", "Oracle", "Red Hat", "Salesforce", "VMware", "ISACA", "ISC2",
	"(ISC)2", "Scrum Alliance", "Scrum.org", "Linux Foundation", "CNCF",
	"HashiCorp", "Databricks", "SANS", "EC-Council",
}

const maxIssuerLineLen = 40

// ExtractCertifications scans text for certification entries. A line
// carrying certification vocabulary (or sitting under a certifications
// header with a nearby year) starts an entry; a short following line is
// tentatively consumed as the issuer. Zero certifications is a valid
// outcome; there is no placeholder fallback.
func ExtractCertifications(text string) []types.Certification {
	lines := nonEmptyLines(text)
	var entries []types.Certification
	inSection := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if certHeaderLine.MatchString(line) {
			inSection = true
			continue
		}
		if certExitPattern.MatchString(line) {
			inSection = false
			continue
		}

		qualifies := certWords.MatchString(line) && !certHeaderLine.MatchString(line)
		if !qualifies && inSection {
			// Inside the section a line with a nearby year also qualifies.
			qualifies = certYearPattern.MatchString(line) || strings.HasPrefix(line, "• ")
		}
		if !qualifies {
			continue
		}

		name := strings.TrimPrefix(line, "• ")
		entry := types.Certification{Name: name}

		// The next line may be the issuer: short and not a new entry.
		if i+1 < len(lines) {
			next := lines[i+1]
			if len(next) <= maxIssuerLineLen && !certWords.MatchString(next) &&
				!certHeaderLine.MatchString(next) && !certExitPattern.MatchString(next) &&
				!strings.HasPrefix(next, "• ") && !certYearPattern.MatchString(next) {
				entry.Issuer = next
				i++
			}
		}

		entries = append(entries, finalizeCertification(entry))
	}

	if entries == nil {
		return []types.Certification{}
	}
	return entries
}

// finalizeCertification applies the post-pass: split "Name by Issuer" and
// "Name - Issuer" shapes, pull an embedded year into Year, and recover a
// known provider from the name when the issuer is still empty.
func finalizeCertification(cert types.Certification) types.Certification {
	if cert.Issuer == "" {
		if m := certIssuerSplit.FindStringSubmatch(cert.Name); m != nil && len(m[2]) <= maxIssuerLineLen {
			cert.Name = strings.TrimSpace(m[1])
			cert.Issuer = strings.TrimSpace(m[2])
		}
	}

	for _, field := range []*string{&cert.Name, &cert.Issuer} {
		if cert.Year == "" {
			if year := certYearPattern.FindString(*field); year != "" {
				cert.Year = year
				*field = strings.TrimSpace(strings.Trim(strings.Replace(*field, year, "", 1), " ,()-–—"))
			}
		}
	}

	if cert.Issuer == "" {
		for _, issuer := range knownIssuers {
			if idx := indexFold(cert.Name, issuer); idx >= 0 {
				cert.Issuer = issuer
				remainder := cert.Name[:idx] + cert.Name[idx+len(issuer):]
				remainder = strings.TrimSpace(strings.Trim(remainder, " ,-–—"))
				if remainder != "" {
					cert.Name = remainder
				}
				break
			}
		}
	}

	return cert
}

// indexFold is a case-insensitive strings.Index.
func indexFold(haystack, needle string) int {
	return strings.Index(strings.ToLower(haystack), strings.ToLower(needle))
}
