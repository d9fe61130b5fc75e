package service

import (
	"errors"
	"fmt"

	"github.com/maxviazov/paging-service/pkg/paging"
)

// validatePageRequest checks a page request against the configured bounds
// before it reaches the engine.
func validatePageRequest(number, size, total int, opts Options) []FieldError {
	var ferrs []FieldError
	if number < 1 {
		ferrs = append(ferrs, FieldError{Field: "page", Message: "must be >= 1"})
	}
	switch {
	case size < 0 || size > opts.MaxSize:
		ferrs = append(ferrs, FieldError{Field: "size", Message: fmt.Sprintf("must be between 0 and %d", opts.MaxSize)})
	case size == 0 && number > 1:
		ferrs = append(ferrs, FieldError{Field: "size", Message: "0 (unbounded) is only valid on page 1"})
	}
	if total < 0 {
		ferrs = append(ferrs, FieldError{Field: "total", Message: "must be >= 0"})
	}
	return ferrs
}

// pagingFieldNames maps engine field names onto request field names.
var pagingFieldNames = map[string]string{
	"number":     "page",
	"size":       "size",
	"totalItems": "total",
}

// fromPagingError turns engine input errors into field errors. Overflow and
// deserialization failures keep their own identity for the transport.
func fromPagingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, paging.ErrOverflow) || errors.Is(err, paging.ErrDeserialization) {
		return err
	}
	if !errors.Is(err, paging.ErrInvalidArgument) {
		return err
	}
	field, ok := paging.FieldOf(err)
	if !ok {
		field = "page"
	}
	if mapped, ok := pagingFieldNames[field]; ok {
		field = mapped
	}
	return NewInvalidInputError([]FieldError{{Field: field, Message: err.Error()}})
}

func normalizePage(p paging.Page, opts Options) paging.Page {
	number, size := p.Number, p.Size
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = opts.DefaultSize
	}
	if size > opts.MaxSize {
		size = opts.MaxSize
	}
	return paging.Page{Number: number, Size: size}
}
