package categories

import (
	"strings"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// patternEntry is one inverted (pattern, category) pair.
type patternEntry struct {
	pattern  string
	category string
}

// invert flattens the definitions into a pattern-to-category list for
// lookup. A pattern defined under several categories keeps its first-seen
// position but the last-seen category wins.
func (d *Definitions) invert() []patternEntry {
	var entries []patternEntry
	seen := make(map[string]int)
	for _, c := range d.categories {
		for _, p := range c.Patterns {
			if i, ok := seen[p]; ok {
				entries[i].category = c.Name
				continue
			}
			seen[p] = len(entries)
			entries = append(entries, patternEntry{pattern: p, category: c.Name})
		}
	}
	return entries
}

// resolve picks the category whose pattern matches the booking text. All
// patterns are tried as case-insensitive substrings; the longest matching
// pattern wins, and equal lengths keep the earlier entry. No match returns
// the unknown sentinel.
func resolve(entries []patternEntry, text string) string {
	lower := strings.ToLower(text)
	category := model.UnknownCategory
	best := 0
	for _, e := range entries {
		if len(e.pattern) > best && strings.Contains(lower, strings.ToLower(e.pattern)) {
			category = e.category
			best = len(e.pattern)
		}
	}
	return category
}

// Resolve returns the category for a single booking text.
func (d *Definitions) Resolve(text string) string {
	return resolve(d.invert(), text)
}

// Categorize returns a copy of the transactions with Kategorie populated.
func (d *Definitions) Categorize(txns []model.Transaction) []model.Transaction {
	entries := d.invert()
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		t.Kategorie = resolve(entries, t.Buchungstext)
		out[i] = t
	}
	return out
}
