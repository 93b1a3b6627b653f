package pagination

import "fmt"

// Request bounds and defaults.
const (
	DefaultPage = 0
	DefaultSize = 10
	MinSize     = 1
	MaxSize     = 100
)

// ValidationError reports a Request field that violated its constraint.
type ValidationError struct {
	Field      string
	Constraint string
	Value      int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid pagination request: field %q (value %d) violates %s",
		e.Field, e.Value, e.Constraint)
}

// Request describes one page of a paginated list query. Page is 0-based.
type Request struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// ParseRequest builds a Request from optional page and size values, applying
// DefaultPage and DefaultSize for nil inputs, then validates it.
func ParseRequest(page, size *int) (Request, error) {
	req := Request{Page: DefaultPage, Size: DefaultSize}
	if page != nil {
		req.Page = *page
	}
	if size != nil {
		req.Size = *size
	}

	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks the request bounds: page >= 0, size in [MinSize, MaxSize].
// The returned error is a *ValidationError naming the offending field.
func (r Request) Validate() error {
	if r.Page < 0 {
		return &ValidationError{Field: "page", Constraint: "page >= 0", Value: r.Page}
	}
	if r.Size < MinSize || r.Size > MaxSize {
		return &ValidationError{
			Field:      "size",
			Constraint: fmt.Sprintf("%d <= size <= %d", MinSize, MaxSize),
			Value:      r.Size,
		}
	}
	return nil
}

// Offset returns the record offset of the requested page.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Response is the envelope for one page of a paginated list result.
type Response[T any] struct {
	Content []T `json:"content"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	Size    int `json:"size"`
}

// NewResponse builds a Response echoing the request's page and size.
func NewResponse[T any](content []T, total int, req Request) Response[T] {
	return Response[T]{
		Content: content,
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
	}
}
