package pagination

import "errors"

// Common errors returned by the planner and fetcher.
var (
	// ErrInvalidPageSize is returned when pageSize < 1.
	ErrInvalidPageSize = errors.New("page size must be >= 1")

	// ErrInvalidConcurrency is returned when MaxConcurrency < 1.
	ErrInvalidConcurrency = errors.New("max concurrency must be >= 1")

	// ErrNegativeTotal is returned when totalCount < 0.
	ErrNegativeTotal = errors.New("total count must be >= 0")
)

// Page describes a single offset/limit read of a paginated dataset.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Offset is the index of the first record on the page.
	Offset int

	// Limit is the number of records to read. The last page is clipped so
	// that Offset+Limit never exceeds the total count.
	Limit int
}

// Plan computes the full page set for a dataset of totalCount records read
// pageSize at a time. Page p (0-based) has Offset p*pageSize and Limit
// min(pageSize, totalCount-Offset). A totalCount of 0 yields an empty plan.
func Plan(totalCount, pageSize int) ([]Page, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}
	if totalCount < 0 {
		return nil, ErrNegativeTotal
	}
	if totalCount == 0 {
		return nil, nil
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	pages := make([]Page, totalPages)
	for p := 0; p < totalPages; p++ {
		offset := p * pageSize
		limit := pageSize
		if remaining := totalCount - offset; remaining < limit {
			limit = remaining
		}
		pages[p] = Page{Number: p + 1, Offset: offset, Limit: limit}
	}

	return pages, nil
}
