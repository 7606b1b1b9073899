// Package courses maps skill keywords to course listings. It is a
// static lookup, treated as an opaque collaborator by the analysis
// pipeline: an empty result is a valid "no recommendations", never an
// error.
package courses

import "strings"

// Course is one recommended course listing.
type Course struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

const maxRecommendations = 8

// Recommend returns course listings for the given skill keywords,
// deduped by URL, in keyword order, capped at maxRecommendations.
func Recommend(skills []string) []Course {
	out := []Course{}
	seen := map[string]struct{}{}
	for _, skill := range skills {
		key := normalizeSkill(skill)
		if key == "" {
			continue
		}
		for _, course := range catalog[key] {
			if _, ok := seen[course.URL]; ok {
				continue
			}
			seen[course.URL] = struct{}{}
			out = append(out, course)
			if len(out) == maxRecommendations {
				return out
			}
		}
	}
	return out
}

func normalizeSkill(skill string) string {
	key := strings.ToLower(strings.TrimSpace(skill))
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}
