package domain

import "strings"

// NormalizeTags lowercases and trims tags, drops empties, and collapses
// duplicates while preserving first-occurrence order. Tag order carries no
// meaning but is kept stable for display.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// HasAllTags reports whether the trip's tag set is a superset of want.
// An empty want matches every trip.
func (t Trip) HasAllTags(want []string) bool {
	for _, w := range want {
		found := false
		for _, tag := range t.Tags {
			if tag == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
