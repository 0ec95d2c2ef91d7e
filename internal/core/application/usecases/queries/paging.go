// Package queries contains the read side of the application: each query is
// a validated parameter object paired with a handler that reads straight
// from the database, bypassing the domain aggregates.
package queries

import "strings"

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// normalizePaging replaces non-positive page and pageSize values with the
// defaults so offset arithmetic stays well-defined. There is no upper
// bound here; capping page sizes is a transport concern.
func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

// resolveSort maps a caller-supplied sort key onto a whitelisted ORDER BY
// clause. Keys are case-insensitive and a "_desc" suffix flips direction.
// Unknown keys fall back to the given default clause rather than erroring,
// so sort never becomes an injection surface.
func resolveSort(raw string, columns map[string]string, fallback string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	desc := strings.HasSuffix(key, "_desc")
	key = strings.TrimSuffix(key, "_desc")

	column, ok := columns[key]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}

	return column + " ASC"
}
