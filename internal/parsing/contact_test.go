package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail_PrefersLabeled(t *testing.T) {
	text := "Reach me at work@example.com\nEmail: personal@example.com"

	assert.Equal(t, "personal@example.com", ExtractEmail(text))
}

func TestExtractEmail_BareAddress(t *testing.T) {
	assert.Equal(t, "jane.doe+jobs@sub.example.co", ExtractEmail("jane.doe+jobs@sub.example.co"))
}

func TestExtractEmail_NoMatch(t *testing.T) {
	assert.Equal(t, "", ExtractEmail("no contact details here"))
}

func TestExtractPhone_NormalizesUSFormats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "555-123-4567"},
		{"555.123.4567", "555-123-4567"},
		{"5551234567", "555-123-4567"},
		{"+1 555 123 4567", "+1 555-123-4567"},
		{"1-555-123-4567", "+1 555-123-4567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractPhone(tc.in), tc.in)
	}
}

func TestExtractPhone_Labeled(t *testing.T) {
	assert.Equal(t, "555-123-4567", ExtractPhone("Phone: (555) 123-4567"))
	assert.Equal(t, "555-123-4567", ExtractPhone("Mobile 555 123 4567"))
}

func TestExtractPhone_NoMatch(t *testing.T) {
	assert.Equal(t, "", ExtractPhone("call the front desk"))
}

func TestExtractLocation_CityStateZip(t *testing.T) {
	assert.Equal(t, "San Francisco, CA", ExtractLocation("Jane Doe\nSan Francisco, CA"))
	assert.Equal(t, "Austin, TX 78701", ExtractLocation("Austin, TX 78701"))
}

func TestExtractLocation_Labeled(t *testing.T) {
	assert.Equal(t, "Portland, OR", ExtractLocation("Location: Portland, OR"))
}

func TestExtractLocation_StandaloneLineScan(t *testing.T) {
	text := "Jane Doe\njane@example.com\nSeattle\nEXPERIENCE"

	assert.Equal(t, "Seattle", ExtractLocation(text))
}

func TestExtractLocation_SkipsNamesAndBoilerplate(t *testing.T) {
	// Two bare capitalized words are usually a person's name, and known
	// heading tokens are never locations.
	assert.Equal(t, "", ExtractLocation("Jane Doe\nResume\nSummary"))
}
