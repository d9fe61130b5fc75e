package repository

import (
	"context"

	"github.com/maxviazov/paging-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager runs a unit of work in one consistent snapshot, so a count and
// the page read after it agree with each other.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// ItemRepository declares persistence operations for catalog items.
// Implementations return the domain errors from errors.go.
type ItemRepository interface {
	Create(ctx context.Context, it model.Item) (model.Item, error)
	GetByID(ctx context.Context, id int64) (model.Item, error)
	// Count returns the total number of items, the input of every page computation.
	Count(ctx context.Context) (int, error)
	// List returns items ordered by id within w.
	List(ctx context.Context, w Window) ([]model.Item, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
