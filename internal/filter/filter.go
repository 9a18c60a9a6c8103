// Package filter provides pure filter functions for catalog items.
// All functions are simple: []Item in, []Item out. No side effects.
package filter

import (
	"strings"

	"github.com/abelbrown/tutoriais/internal/catalog"
)

// AllTypes is the media-type value that disables the type predicate.
const AllTypes = "ALL"

// Apply keeps items passing the category, type and text predicates, in
// catalog order. Unknown categories or types simply match nothing.
func Apply(items []catalog.Item, category, typ, query string) []catalog.Item {
	result := make([]catalog.Item, 0, len(items))
	q := strings.ToLower(query)

	for _, item := range items {
		if !matchCategory(item, category) {
			continue
		}
		if !matchType(item, typ) {
			continue
		}
		if !matchText(item, q) {
			continue
		}
		result = append(result, item)
	}

	return result
}

// Related returns up to limit items, other than current, that share at least
// one tag with it. Catalog order is preserved.
func Related(items []catalog.Item, current catalog.Item, limit int) []catalog.Item {
	result := make([]catalog.Item, 0, limit)
	if limit <= 0 {
		return result
	}

	for _, item := range items {
		if item.ID == current.ID {
			continue
		}
		if !sharesTag(item, current) {
			continue
		}
		result = append(result, item)
		if len(result) == limit {
			break
		}
	}

	return result
}

func matchCategory(item catalog.Item, category string) bool {
	return category == catalog.AllCategory || item.HasTag(category)
}

func matchType(item catalog.Item, typ string) bool {
	return typ == AllTypes || string(item.Type) == typ
}

// matchText expects q already lowercased.
func matchText(item catalog.Item, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Excerpt), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sharesTag(a, b catalog.Item) bool {
	for _, tag := range a.Tags {
		if b.HasTag(tag) {
			return true
		}
	}
	return false
}
