// Package service holds use-case orchestration between repositories and
// handlers: validation, paging computation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/paging-service/internal/model"
	"github.com/maxviazov/paging-service/pkg/paging"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error, or nil when fe is empty.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PagingService exposes the paging engine to transports.
type PagingService interface {
	Calculate(ctx context.Context, req CalculateRequest) (paging.Info, error)
	Turn(ctx context.Context, req TurnRequest) (paging.Info, error)
	Restore(ctx context.Context, payload []byte, includePages bool) (paging.Info, error)
}

// ItemService defines catalog use cases.
type ItemService interface {
	CreateItem(ctx context.Context, name string) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context, page paging.Page) (paging.List[model.Item], error)
}

// Options bound what clients may ask of the paging engine.
type Options struct {
	DefaultSize int
	MaxSize     int
	// MaxEnumeratedPages caps the per-page enumeration, which grows with the total.
	MaxEnumeratedPages int
}

func (o Options) withDefaults() Options {
	if o.DefaultSize <= 0 {
		o.DefaultSize = paging.DefaultSize
	}
	if o.MaxSize <= 0 || o.MaxSize > paging.MaxSize {
		o.MaxSize = paging.MaxSize
	}
	if o.DefaultSize > o.MaxSize {
		o.DefaultSize = o.MaxSize
	}
	if o.MaxEnumeratedPages <= 0 {
		o.MaxEnumeratedPages = 1000
	}
	if o.MaxEnumeratedPages > paging.MaxEnumeratedPages {
		o.MaxEnumeratedPages = paging.MaxEnumeratedPages
	}
	return o
}
