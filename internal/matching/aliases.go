// Package matching scores a parsed resume against job listings with a
// weighted multi-factor formula: a skills overlap score plus education,
// experience, keyword, and title-relevance bonuses. All sub-scores are
// deterministic functions of the two text inputs.
package matching

import "strings"

// skillAliases maps a canonical skill token to the spellings that count as
// the same skill. Lookups run in both directions.
var skillAliases = map[string][]string{
	"javascript":          {"js", "es6", "ecmascript"},
	"typescript":          {"ts"},
	"react":               {"reactjs", "react.js"},
	"vue":                 {"vuejs", "vue.js"},
	"angular":             {"angularjs"},
	"node.js":             {"node", "nodejs"},
	"go":                  {"golang"},
	"python":              {"py"},
	"c#":                  {"csharp", ".net"},
	"aws":                 {"amazon web services"},
	"gcp":                 {"google cloud", "google cloud platform"},
	"azure":               {"microsoft azure"},
	"kubernetes":          {"k8s"},
	"postgresql":          {"postgres"},
	"mongodb":             {"mongo"},
	"ml":                  {"machine learning"},
	"ai":                  {"artificial intelligence"},
	"ci/cd":               {"continuous integration", "continuous delivery"},
	"rest":                {"restful", "rest api"},
	"oop":                 {"object-oriented programming"},
	"tdd":                 {"test-driven development"},
	"nlp":                 {"natural language processing"},
	"project management":  {"pm"},
	"database":            {"db", "databases"},
	"ui/ux":               {"ui", "ux", "user experience", "user interface"},
}

// SkillsMatch reports whether two skill tokens name the same skill:
// case-insensitive substring containment in either direction, then the alias
// table checked both ways.
func SkillsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return aliasMatch(a, b) || aliasMatch(b, a)
}

// aliasMatch reports whether b is a listed alias of canonical token a.
func aliasMatch(a, b string) bool {
	for _, alias := range skillAliases[a] {
		if alias == b {
			return true
		}
	}
	return false
}

// containsSkill reports whether any resume skill matches the given job
// skill.
func containsSkill(resumeSkills []string, jobSkill string) bool {
	for _, skill := range resumeSkills {
		if SkillsMatch(skill, jobSkill) {
			return true
		}
	}
	return false
}
