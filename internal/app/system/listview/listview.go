// internal/app/system/listview/listview.go
package listview

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 10

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseSearch extracts the trimmed "q" query parameter.
func ParseSearch(r *http.Request) string {
	return strings.TrimSpace(query.Get(r, "q"))
}

// Filter returns the items whose searchable fields contain term,
// case-insensitively. fields selects the text fields to match for the
// resource (class name + description, exam title + description, and so on).
//
// An empty or whitespace-only term matches everything. The result preserves
// the input order and never aliases the input slice when a term is set.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Paginate returns the 1-based page window [ (page-1)*size, page*size ) and
// the total page count, ceil(len(items)/size). An empty input has zero
// pages. A page past the end yields an empty slice — no error and no
// clamping; callers clamp the page number themselves when the filtered set
// shrinks (after a delete, or a narrowing search).
func Paginate[T any](items []T, page, size int) (pageItems []T, totalPages int) {
	if size <= 0 || page < 1 {
		return nil, 0
	}

	totalPages = (len(items) + size - 1) / size

	start := (page - 1) * size
	if start >= len(items) {
		return nil, totalPages
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// ClampPage pulls an out-of-range page back inside [1, totalPages].
// With no pages at all it returns 1 so "page 1 of 0" links stay sane.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
