package domain

// DefaultPageSize is the number of contacts per page.
const DefaultPageSize = 5

// TotalPages returns max(1, ceil(n/pageSize)). A non-positive page size
// counts as DefaultPageSize.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Page returns the elements in [(index-1)*pageSize, index*pageSize)
// clipped to the sequence. Indexes outside the sequence give an empty page.
func Page[T any](seq []T, pageSize, index int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if index < 1 {
		return []T{}
	}
	start := (index - 1) * pageSize
	if start >= len(seq) {
		return []T{}
	}
	end := start + pageSize
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end:end]
}

// Paginator tracks the 1-based current page of a sequence of a given
// length. The zero value is not usable; use NewPaginator.
type Paginator struct {
	page     int
	pageSize int
	total    int
}

// NewPaginator returns a paginator on page 1.
func NewPaginator(pageSize int) Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Paginator{page: 1, pageSize: pageSize}
}

// Page returns the current 1-based page.
func (p Paginator) Page() int { return p.page }

// PageSize returns the configured page size.
func (p Paginator) PageSize() int { return p.pageSize }

// Len returns the length of the paginated sequence.
func (p Paginator) Len() int { return p.total }

// TotalPages returns the page count for the current length.
func (p Paginator) TotalPages() int { return TotalPages(p.total, p.pageSize) }

// HasNext reports whether Next would change the page.
func (p Paginator) HasNext() bool { return p.page < p.TotalPages() }

// HasPrev reports whether Prev would change the page.
func (p Paginator) HasPrev() bool { return p.page > 1 }

// Reset sets a new sequence length and returns to page 1.
func (p *Paginator) Reset(length int) {
	p.total = length
	p.page = 1
}

// Next advances one page. It is a no-op on the last page.
func (p *Paginator) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

// Prev goes back one page. It is a no-op on page 1.
func (p *Paginator) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page--
	return true
}

// GoTo jumps to page n. Out-of-range pages and the current page are no-ops.
func (p *Paginator) GoTo(n int) bool {
	if n < 1 || n > p.TotalPages() || n == p.page {
		return false
	}
	p.page = n
	return true
}

// Bounds returns the half-open index range of the current page.
func (p Paginator) Bounds() (start, end int) {
	start = (p.page - 1) * p.pageSize
	end = start + p.pageSize
	if start > p.total {
		start = p.total
	}
	if end > p.total {
		end = p.total
	}
	return start, end
}
