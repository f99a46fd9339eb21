// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
)

// PageSize is the number of rows shown in paged lists.
const PageSize = 10

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid; clamping against the total happens
// in Clamp once the caller knows the row count.
func ParsePage(r *http.Request) int {
	s := r.URL.Query().Get("page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NumPages returns the number of pages needed for total rows. A collection
// with no rows still has one (empty) page.
func NumPages(total int64) int {
	if total <= 0 {
		return 1
	}
	n := int((total + PageSize - 1) / PageSize)
	return n
}

// Clamp forces page into [1, NumPages(total)]. Out-of-range page numbers
// land on the nearest valid page rather than failing.
func Clamp(page int, total int64) int {
	last := NumPages(total)
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// Page holds computed values for rendering a paginated list.
type Page struct {
	Number   int   // clamped, 1-based
	NumPages int   // total page count (≥1)
	Total    int64 // total row count
	Skip     int64 // offset for the store query
	Limit    int64 // row limit for the store query

	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

// Compute clamps the requested page against the total and derives the
// skip/limit window plus prev/next navigation values.
func Compute(requested int, total int64) Page {
	num := NumPages(total)
	page := Clamp(requested, total)

	p := Page{
		Number:   page,
		NumPages: num,
		Total:    total,
		Skip:     int64(page-1) * PageSize,
		Limit:    PageSize,
		HasPrev:  page > 1,
		HasNext:  page < num,
	}
	if p.HasPrev {
		p.Prev = page - 1
	}
	if p.HasNext {
		p.Next = page + 1
	}
	return p
}
