package catalog

import "strings"

// Search returns the entries matching query, in catalog order. An empty
// category means all categories; a non-empty one restricts the
// candidate set before text matching.
//
// A query matches when it is empty, a case-insensitive substring of the
// label or category name, or exactly equals or is contained in one of
// the entry's shortcuts. The exact-shortcut path lets short tokens like
// "h1" or "ul" resolve precisely.
func (c *Catalog) Search(query string, category Category) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))

	out := []Entry{}
	for _, e := range c.entries {
		if category != "" && e.Category != category {
			continue
		}
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Label), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(e.Category)), q) {
		return true
	}
	for _, s := range e.Shortcuts {
		s = strings.ToLower(s)
		if s == q || strings.Contains(s, q) {
			return true
		}
	}
	return false
}
