package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess_Idempotent(t *testing.T) {
	raw := "Jane Doe jane@example.com 555-123-4567 EXPERIENCE Senior Engineer. Built systems. EDUCATION State University"

	once := Preprocess(raw)
	twice := Preprocess(once)

	assert.Equal(t, once, twice)
}

func TestPreprocess_BreaksBeforeSectionHeaders(t *testing.T) {
	raw := "some intro text EDUCATION State University"

	out := Preprocess(raw)

	assert.Contains(t, out, "\nEDUCATION")
	assert.True(t, strings.Contains(out, "EDUCATION\nState University") ||
		strings.Contains(out, "EDUCATION\n\nState University"), "header should end its line: %q", out)
}

func TestPreprocess_IsolatesContactTokens(t *testing.T) {
	raw := "Jane Doe jane.doe@example.com 555-123-4567 San Francisco"

	out := Preprocess(raw)
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines, "jane.doe@example.com")
	foundPhone := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "555-123-4567" {
			foundPhone = true
		}
	}
	assert.True(t, foundPhone, "phone should be on its own line: %q", out)
}

func TestPreprocess_NormalizesBulletGlyphs(t *testing.T) {
	raw := "EXPERIENCE\n- Built services\n* Shipped features\n▪ Led reviews"

	out := Preprocess(raw)

	assert.Contains(t, out, "• Built services")
	assert.Contains(t, out, "• Shipped features")
	assert.Contains(t, out, "• Led reviews")
}

func TestPreprocess_SeparatesJoinedSentences(t *testing.T) {
	raw := "Built the billing system. Later led the platform team."

	out := Preprocess(raw)

	assert.Contains(t, out, "system.\nLater")
}

func TestPreprocess_NormalizesCurlyQuotes(t *testing.T) {
	out := Preprocess("Led “Tiger” team’s migration")

	assert.Contains(t, out, `"Tiger"`)
	assert.Contains(t, out, "team's")
}

func TestPreprocess_LowercaseExperienceWordUntouched(t *testing.T) {
	raw := "Five years of experience in backend work"

	out := Preprocess(raw)

	assert.Equal(t, raw, out)
}
