package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_VocabularyFromFullText(t *testing.T) {
	text := "Built microservices with Python and Docker on AWS"

	skills := ExtractSkills(text, "")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "Microservices")
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	skills := ExtractSkills("Deep JavaScript expertise", "")

	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Java")
}

func TestExtractSkills_SymbolSuffixes(t *testing.T) {
	skills := ExtractSkills("Wrote C++ services and C# tools", "")

	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
}

func TestExtractSkills_NoSpuriousSingleLetterHits(t *testing.T) {
	assert.Empty(t, ExtractSkills("senior developer role", ""))
}

func TestExtractSkills_SectionTokensOutsideVocabulary(t *testing.T) {
	section := "Quantum Annealing; Esoteric Tooling\n• Legacy Mainframes"

	skills := ExtractSkills("", section)

	assert.Contains(t, skills, "Quantum Annealing")
	assert.Contains(t, skills, "Esoteric Tooling")
	assert.Contains(t, skills, "Legacy Mainframes")
}

func TestExtractSkills_SectionTokenFilters(t *testing.T) {
	section := "ab, 12345, " + strings.Repeat("x", 31) + ", far too many spaces in this one token"

	assert.Empty(t, ExtractSkills("", section))
}

func TestExtractSkills_DeduplicatesCaseInsensitively(t *testing.T) {
	skills := ExtractSkills("Python everywhere", "python, PYTHON, Python")

	count := 0
	for _, s := range skills {
		if strings.EqualFold(s, "python") {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "Python", skills[0])
}

func TestExtractSkills_VocabularyOrderFirst(t *testing.T) {
	skills := ExtractSkills("Docker and Python daily", "")

	assert.Equal(t, []string{"Python", "Docker"}, skills)
}

func TestExtractSkills_EmptyInputReturnsEmptySlice(t *testing.T) {
	skills := ExtractSkills("", "")

	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}
