package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/paging-service/internal/model"
	"github.com/maxviazov/paging-service/internal/repository"
)

type itemRepository struct{ pool *pgxpool.Pool }

func NewItemRepository(pool *pgxpool.Pool) repository.ItemRepository {
	return &itemRepository{pool: pool}
}

func (r *itemRepository) Create(ctx context.Context, it model.Item) (model.Item, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Item{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO items (name) VALUES ($1)
		 RETURNING id, name, created_at, updated_at`,
		it.Name,
	)
	var out model.Item
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Item{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Item{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM items WHERE id = $1`, id,
	)
	var out model.Item
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, repository.ErrNotFound
		}
		return model.Item{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *itemRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	if err := getQ(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

func (r *itemRepository) List(ctx context.Context, w repository.Window) ([]model.Item, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	// LIMIT NULL reads every remaining row
	var limit any
	if w.Limit > 0 {
		limit = w.Limit
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM items
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, w.Offset,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Item, error) {
		var it model.Item
		err := row.Scan(&it.ID, &it.Name, &it.CreatedAt, &it.UpdatedAt)
		return it, err
	})
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return items, nil
}

// Exists is a lightweight presence check.
func (r *itemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	err := getQ(ctx, r.pool).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

var _ repository.ItemRepository = (*itemRepository)(nil)
