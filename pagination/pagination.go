// Package pagination slices already-loaded result sets into numbered pages.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100
)

// Params selects one page. Page is 1-based.
type Params struct {
	Page int
	Size int
}

// Page is the envelope returned to clients.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// ValidationError lists the query parameters that were rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, msg))
	}
	return "invalid pagination parameters: " + strings.Join(parts, "; ")
}

// DefaultParams returns the first page with the default size.
func DefaultParams() Params {
	return Params{Page: DefaultPage, Size: DefaultSize}
}

// ParseParams reads the page and size query values. Empty values fall back
// to the defaults.
func ParseParams(rawPage, rawSize string) (Params, error) {
	params := DefaultParams()
	fields := map[string]string{}

	if rawPage = strings.TrimSpace(rawPage); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		switch {
		case err != nil:
			fields["page"] = "must be an integer"
		case page < 1:
			fields["page"] = "must be greater than or equal to 1"
		default:
			params.Page = page
		}
	}

	if rawSize = strings.TrimSpace(rawSize); rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		switch {
		case err != nil:
			fields["size"] = "must be an integer"
		case size < 1 || size > MaxSize:
			fields["size"] = fmt.Sprintf("must be between 1 and %d", MaxSize)
		default:
			params.Size = size
		}
	}

	if len(fields) > 0 {
		return Params{}, &ValidationError{Fields: fields}
	}
	return params, nil
}

// Paginate returns the requested window of items. A page past the end is
// empty but still reports the totals.
func Paginate[T any](items []T, params Params) Page[T] {
	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Size < 1 {
		params.Size = DefaultSize
	}

	total := len(items)
	page := Page[T]{
		Items: []T{},
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: (total + params.Size - 1) / params.Size,
	}

	// compare pages before multiplying so huge page numbers cannot overflow
	if params.Page > page.Pages {
		return page
	}
	start := (params.Page - 1) * params.Size
	end := min(start+params.Size, total)
	page.Items = append(page.Items, items[start:end]...)
	return page
}
