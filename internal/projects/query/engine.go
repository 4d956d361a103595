package query

import (
	"slices"
	"strings"

	"github.com/Lightzzz011/project-showcase-api/internal/projects/domain"
)

// Result is one page of a filtered, sorted project list.
type Result struct {
	Data    []domain.Project
	Total   int
	Page    int
	PerPage int
}

// FilterAndPaginate applies text search, tag filter, sort order and
// pagination to items. items is never modified.
//
// Total counts every match, independent of the page requested. A page past
// the end yields an empty Data slice.
func FilterAndPaginate(items []domain.Project, p Params) Result {
	p = p.normalize()

	out := make([]domain.Project, 0, len(items))
	q := strings.ToLower(p.Q)
	for _, it := range items {
		if q != "" && !strings.Contains(it.SearchText(), q) {
			continue
		}
		if p.Tag != "" && !it.HasTag(p.Tag) {
			continue
		}
		out = append(out, it)
	}

	switch p.Sort {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b domain.Project) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
	case SortOldest:
		slices.SortStableFunc(out, func(a, b domain.Project) int {
			return a.CreatedAt.Compare(b.CreatedAt.Time)
		})
	}

	total := len(out)
	start := total
	if p.Page-1 <= total/p.PerPage {
		start = min((p.Page-1)*p.PerPage, total)
	}
	end := min(start+p.PerPage, total)

	return Result{
		Data:    out[start:end],
		Total:   total,
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}
