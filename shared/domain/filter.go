package domain

import "strings"

// AllCategories is the sentinel category/interest that disables filtering.
const AllCategories = "All"

func matchesChoice(want string, have ...string) bool {
	if want == "" || strings.EqualFold(want, AllCategories) {
		return true
	}
	for _, h := range have {
		if strings.EqualFold(strings.TrimSpace(h), want) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Match reports whether p passes the category and text query.
func (f PostFilter) Match(p Post) bool {
	category := ""
	if p.Category != nil {
		category = *p.Category
	}
	if !matchesChoice(strings.TrimSpace(f.Category), category) {
		return false
	}
	q := strings.TrimSpace(f.Query)
	return q == "" || containsFold(p.Title, q) || containsFold(p.Body, q)
}

// Match reports whether t passes the interest and text query.
func (f TeamFilter) Match(t Team) bool {
	if !matchesChoice(strings.TrimSpace(f.Interest), t.Interests...) {
		return false
	}
	q := strings.TrimSpace(f.Query)
	if q == "" || containsFold(t.Name, q) {
		return true
	}
	return t.Description != nil && containsFold(*t.Description, q)
}
