// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// Page describes one page of an ordered result set.
type Page struct {
	Number      int   `json:"currentPage"`
	Size        int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// Paginate computes page metadata for a result set of totalItems entries.
// A page number past the last page is clamped to the last page rather than
// rejected; page numbers below 1 become page 1. An empty result set still
// yields a single empty page.
func Paginate(totalItems int64, page, size int) Page {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 1
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	if page > totalPages {
		page = totalPages
	}

	return Page{
		Number:      page,
		Size:        size,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// Offset returns the 0-based offset of the page's first item, for SQL
// LIMIT/OFFSET queries.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// SliceBounds returns start/end indices for slicing an in-memory sequence of
// totalItems entries.
func (p Page) SliceBounds(totalItems int) (start, end int) {
	start = p.Offset()
	end = start + p.Size
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// ParsePage parses a page query parameter, falling back to page 1 when the
// value is absent or not a positive number.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}
