package content

import (
	"sort"
	"strings"
)

// FilterAndSort produces the exact ordered subset of a content feed.
//
// An item passes when the type filter is TypeAll or matches item.Type, and
// when the query is empty or is a case-insensitive substring of the item's
// title, body or description. Matching is Unicode-aware; the display text
// is Korean.
//
// Ordering is total and stable: pinned items precede unpinned items, each
// partition is sorted by created_at descending, and equal timestamps keep
// their original relative order. A zero created_at sorts last within its
// partition. The input slice is not mutated.
func FilterAndSort(items []Content, typeFilter, query string) []Content {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Content, 0, len(items))
	for _, item := range items {
		if typeFilter != TypeAll && typeFilter != "" && string(item.Type) != typeFilter {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matchesQuery(c Content, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(c.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(c.Body), loweredQuery) ||
		strings.Contains(strings.ToLower(c.Description), loweredQuery)
}
