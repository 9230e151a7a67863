package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"casedesk/internal/workspace/model"
)

// Sort keys accepted by the listing.
const (
	SortByID          = "id"
	SortByName        = "name"
	SortByClient      = "client"
	SortByOrganizer   = "organizer"
	SortByCaseInfo    = "caseInfo"
	SortByLevelOfCare = "levelOfCare"
	SortByStatus      = "status"
	SortByCreatedAt   = "createdAt"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Config selects and orders the workspaces to show.
// The zero value is completed by Normalize.
type Config struct {
	Search string
	Status string
	SortBy string
	Order  string
}

type comparator func(a, b model.Workspace) int

var comparators = map[string]comparator{
	SortByID:          func(a, b model.Workspace) int { return cmp.Compare(a.ID, b.ID) },
	SortByName:        byString(func(w model.Workspace) string { return w.Name }),
	SortByClient:      byString(func(w model.Workspace) string { return w.Client }),
	SortByOrganizer:   byString(func(w model.Workspace) string { return w.Organizer }),
	SortByCaseInfo:    byString(func(w model.Workspace) string { return w.CaseInfo }),
	SortByLevelOfCare: byString(func(w model.Workspace) string { return w.LevelOfCare }),
	SortByStatus:      byString(func(w model.Workspace) string { return w.Status }),
	SortByCreatedAt:   func(a, b model.Workspace) int { return compareDates(a.CreatedAt, b.CreatedAt) },
}

func byString(get func(model.Workspace) string) comparator {
	return func(a, b model.Workspace) int { return strings.Compare(get(a), get(b)) }
}

// ValidSortKey reports whether key names a sortable field.
func ValidSortKey(key string) bool {
	_, ok := comparators[key]
	return ok
}

// Normalize fills defaults: no search, all statuses, newest first.
// Unknown sort keys fall back to createdAt and any order other than asc is desc.
func (c Config) Normalize() Config {
	if c.Status == "" {
		c.Status = model.StatusAll
	}
	if !ValidSortKey(c.SortBy) {
		c.SortBy = SortByCreatedAt
	}
	if c.Order != OrderAsc {
		c.Order = OrderDesc
	}
	return c
}

// Apply returns the records matching cfg in the requested order.
// records is never modified. Records with equal sort keys keep their relative order.
func Apply(records []model.Workspace, cfg Config) []model.Workspace {
	cfg = cfg.Normalize()
	term := strings.ToLower(cfg.Search)

	out := make([]model.Workspace, 0, len(records))
	for _, w := range records {
		if matchesSearch(w, term) && matchesStatus(w, cfg.Status) {
			out = append(out, w)
		}
	}

	compare := comparators[cfg.SortBy]
	if cfg.Order == OrderAsc {
		slices.SortStableFunc(out, compare)
	} else {
		slices.SortStableFunc(out, func(a, b model.Workspace) int { return compare(b, a) })
	}
	return out
}

func matchesSearch(w model.Workspace, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(w.Name), term) ||
		strings.Contains(strings.ToLower(w.Client), term) ||
		strings.Contains(strings.ToLower(w.Organizer), term)
}

func matchesStatus(w model.Workspace, status string) bool {
	return status == model.StatusAll || w.Status == status
}

var dateLayouts = []string{
	model.DateLayout,
	"Jan 2, 2006",
	"2006-01-02",
	"02-01-2006",
}

// ParseDate reads a display date in any of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareDates orders parseable dates chronologically. Unparseable values come
// before every parseable one and compare lexicographically among themselves.
func compareDates(a, b string) int {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return 1
	case okB:
		return -1
	default:
		return strings.Compare(a, b)
	}
}
