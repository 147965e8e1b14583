package pagination

// DefaultPerPage is the fixed page size for every listing.
const DefaultPerPage = 10

// Page is a display-ready slice of a larger result set.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalCount int64
}

// NormalizePage treats zero and negative page numbers as page 1. Out-of-range
// pages are left as-is; they resolve to an empty page, never an error.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, perPage int) int {
	return (NormalizePage(page) - 1) * perPage
}

func New[T any](items []T, page int, perPage int, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       NormalizePage(page),
		PerPage:    perPage,
		TotalCount: totalCount,
	}
}

func (p Page[T]) TotalPages() int {
	if p.PerPage < 1 || p.TotalCount < 1 {
		return 0
	}
	return int((p.TotalCount + int64(p.PerPage) - 1) / int64(p.PerPage))
}

func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}
