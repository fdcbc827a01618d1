package curriculum

import "strings"

// Filter selects courses in a catalog listing. Zero-valued fields match
// everything.
type Filter struct {
	Type       ContentType // courses containing at least one lesson of this type
	Category   string      // exact, case-insensitive
	Difficulty string      // exact, case-insensitive
	Search     string      // substring of title or description, case-insensitive
}

// Match reports whether c passes the filter.
func (f Filter) Match(c Curriculum) bool {
	if f.Type != "" && !c.HasType(f.Type) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(f.Category, c.Category) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(f.Difficulty, c.Difficulty) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	return true
}

// Apply returns the courses that pass the filter, preserving order.
func (f Filter) Apply(courses []Curriculum) []Curriculum {
	var result []Curriculum
	for _, c := range courses {
		if f.Match(c) {
			result = append(result, c)
		}
	}
	return result
}
