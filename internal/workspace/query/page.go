package query

import (
	"slices"

	"casedesk/internal/workspace/model"
)

// Page sizes offered by the dashboard.
var PageSizes = []int{10, 25, 50}

const DefaultPageSize = 10

// Page is one slice of an already queried view.
type Page struct {
	Items    []model.Workspace
	Total    int
	Page     int
	PageSize int
	Pages    int
}

// Paginate slices items into 1-based pages. Unsupported sizes become
// DefaultPageSize and pages below 1 become 1. A page past the end is empty
// but still reports the totals.
func Paginate(items []model.Workspace, page, pageSize int) Page {
	if !slices.Contains(PageSizes, pageSize) {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	pages := (total + pageSize - 1) / pageSize

	// Pages past the end are answered before multiplying so huge page
	// numbers cannot overflow the offset.
	start, end := total, total
	if page <= pages {
		start = (page - 1) * pageSize
		end = min(start+pageSize, total)
	}

	return Page{
		Items:    items[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Pages:    pages,
	}
}

