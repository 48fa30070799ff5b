package kernel

import (
	"orderflow/internal/pkg/errs"
)

const (
	// DefaultPageSize is used when a listing request does not specify a size.
	DefaultPageSize = 20

	// MaxPageSize bounds a single page to keep result sets manageable.
	MaxPageSize = 100
)

// ErrPageRequestIsNotConstructed indicates that a PageRequest was not created
// through NewPageRequest. The zero value is invalid.
var ErrPageRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"PageRequest must be created via NewPageRequest constructor",
)

// PageRequest is a value object describing one page of a listing: a zero-based
// page number, a page size, and a sort column. The sort column is validated
// against a whitelist by the query that consumes it.
type PageRequest struct {
	page int
	size int
	sort string
}

// NewPageRequest creates a validated page request.
// Page must be >= 0 and size must be in [1, MaxPageSize].
func NewPageRequest(page, size int, sort string) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}

	return PageRequest{page: page, size: size, sort: sort}, nil
}

// Validate ensures the page request was created through the constructor.
func (p PageRequest) Validate() error {
	if p.size == 0 {
		return ErrPageRequestIsNotConstructed
	}
	return nil
}

// Page returns the zero-based page number.
func (p PageRequest) Page() int {
	return p.page
}

// Size returns the page size.
func (p PageRequest) Size() int {
	return p.size
}

// Sort returns the requested sort column. Empty means the caller's default.
func (p PageRequest) Sort() string {
	return p.sort
}

// Offset returns the row offset for this page.
func (p PageRequest) Offset() int {
	return p.page * p.size
}

// Limit returns the row limit for this page.
func (p PageRequest) Limit() int {
	return p.size
}

// TotalPages returns the number of pages needed for total rows at this size.
func (p PageRequest) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(p.size)
	if total%int64(p.size) != 0 {
		pages++
	}
	return int(pages)
}
