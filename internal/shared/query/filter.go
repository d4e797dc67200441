// Package query holds paging and sorting primitives shared by list queries.
package query

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageFilter is 1-based. A page below 1 is read as the first page.
type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) NormalizedPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

func (f PageFilter) Offset() int {
	return (f.NormalizedPage() - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return f.PageSize
}

type SortOrder string

const (
	SortAsc  SortOrder = "Asc"
	SortDesc SortOrder = "Desc"
)

// ParseSortOrder accepts Asc/Desc in any case; anything else is ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

type SortFilter struct {
	SortBy    string
	SortOrder SortOrder
}

func (f SortFilter) IsDescending() bool {
	return f.SortOrder == SortDesc
}

// OrderClause maps SortBy through the allowed column set. An unknown key
// yields "" and the caller applies no ordering.
func (f SortFilter) OrderClause(allowed map[string]string) string {
	column, ok := allowed[f.SortBy]
	if !ok || column == "" {
		return ""
	}
	if f.IsDescending() {
		return column + " DESC"
	}
	return column + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSort(sortBy string, sortOrder SortOrder) FilterOption {
	return func(f *BaseFilter) {
		f.SortBy = sortBy
		f.SortOrder = sortOrder
	}
}

func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{
			Page:     1,
			PageSize: DefaultPageSize,
		},
		SortFilter: SortFilter{
			SortOrder: SortAsc,
		},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
