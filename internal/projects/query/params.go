package query

import (
	"errors"
	"strconv"
	"strings"
)

// Pagination and sort defaults.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 50

	SortNewest = "newest"
	SortOldest = "oldest"

	DefaultSort = SortNewest
)

// Params is the normalized form of a project list request.
//
// Page and PerPage are always the effective values: Page >= 1 and
// 1 <= PerPage <= MaxPerPage. Sort is echoed as given; values other than
// SortNewest and SortOldest keep catalog order.
type Params struct {
	Q       string
	Tag     string
	Page    int
	PerPage int
	Sort    string
}

// Raw carries request parameters exactly as received.
type Raw struct {
	Q       string `form:"q"`
	Tag     string `form:"tag"`
	Page    string `form:"page"`
	PerPage string `form:"perPage"`
	Sort    string `form:"sort"`
}

// ParseParams coerces raw input into Params. It never fails: malformed
// pagination falls back to defaults and an oversized perPage is capped.
func ParseParams(raw Raw) Params {
	sort := strings.TrimSpace(raw.Sort)
	if sort == "" {
		sort = DefaultSort
	}
	return Params{
		Q:       strings.TrimSpace(raw.Q),
		Tag:     strings.TrimSpace(raw.Tag),
		Page:    EffectivePage(raw.Page),
		PerPage: EffectivePerPage(raw.PerPage),
		Sort:    sort,
	}
}

// EffectivePage returns the page to use for s; anything but a positive integer yields 1.
// A page too large for int is kept as math.MaxInt and so lands past the end.
func EffectivePage(s string) int {
	n, ok := atoi(s)
	if !ok || n < 1 {
		return DefaultPage
	}
	return n
}

// EffectivePerPage returns the page size to use for s.
func EffectivePerPage(s string) int {
	n, ok := atoi(s)
	if !ok || n < 1 {
		return DefaultPerPage
	}
	if n > MaxPerPage {
		return MaxPerPage
	}
	return n
}

// atoi parses a decimal integer. Out-of-range values are clamped to
// math.MinInt or math.MaxInt rather than rejected.
func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

// normalize applies the same bounds to already-numeric values.
func (p Params) normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}
