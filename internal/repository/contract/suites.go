// Package contract holds behavior suites every repository implementation
// must pass. Implementations wire them from their own tests with a factory.
package contract

import (
	"context"
	"fmt"
	"testing"

	"github.com/maxviazov/paging-service/internal/model"
	"github.com/maxviazov/paging-service/internal/repository"
	"github.com/maxviazov/paging-service/pkg/paging"
)

type ItemFactory func(t *testing.T) (repository.ItemRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, items repository.ItemRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func seed(t *testing.T, repo repository.ItemRepository, n int) []model.Item {
	t.Helper()
	out := make([]model.Item, 0, n)
	for i := 0; i < n; i++ {
		it, err := repo.Create(context.Background(), model.Item{Name: fmt.Sprintf("item-%03d", i+1)})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		out = append(out, it)
	}
	return out
}

func RunItemRepositoryContract(t *testing.T, makeRepo ItemFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Item{Name: "Widget"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 || created.CreatedAt.IsZero() {
			t.Fatalf("create did not assign id/timestamps: %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Name != created.Name {
			t.Fatalf("mismatch: %+v", got)
		}
		ok, err := repo.Exists(ctx, created.ID)
		if err != nil || !ok {
			t.Fatalf("expected exists, got %v err=%v", ok, err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		ok, err := repo.Exists(context.Background(), 999999)
		if err != nil || ok {
			t.Fatalf("expected missing, got %v err=%v", ok, err)
		}
	})

	t.Run("create_duplicate_name_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Item{Name: "Dup"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, model.Item{Name: "Dup"})
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("count", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		n, err := repo.Count(context.Background())
		if err != nil || n != 0 {
			t.Fatalf("expected empty store, got %d err=%v", n, err)
		}
		seed(t, repo, 7)
		n, err = repo.Count(context.Background())
		if err != nil || n != 7 {
			t.Fatalf("expected 7 items, got %d err=%v", n, err)
		}
	})

	t.Run("windows_tile_collection", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seeded := seed(t, repo, 7)

		total, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		var seen []int64
		for n := 1; n <= 3; n++ {
			info, err := paging.Compute(paging.Page{Number: n, Size: 3}, total, false)
			if err != nil {
				t.Fatalf("compute page %d: %v", n, err)
			}
			items, err := repo.List(ctx, repository.WindowFor(info))
			if err != nil {
				t.Fatalf("list page %d: %v", n, err)
			}
			if len(items) != info.ItemCount() {
				t.Fatalf("page %d: got %d items, info says %d", n, len(items), info.ItemCount())
			}
			for _, it := range items {
				seen = append(seen, it.ID)
			}
		}
		if len(seen) != len(seeded) {
			t.Fatalf("pages returned %d items, want %d", len(seen), len(seeded))
		}
		for i, it := range seeded {
			if seen[i] != it.ID {
				t.Fatalf("position %d: got id %d, want %d (ordering by id)", i, seen[i], it.ID)
			}
		}
	})

	t.Run("unlimited_window_returns_all", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 5)
		items, err := repo.List(context.Background(), repository.Window{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 5 {
			t.Fatalf("expected 5 items, got %d", len(items))
		}
	})

	t.Run("offset_past_end_is_empty", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 2)
		items, err := repo.List(context.Background(), repository.Window{Limit: 10, Offset: 50})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected no items, got %d", len(items))
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, items, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := items.Create(ctx, model.Item{Name: "TxCommit"})
			if err != nil {
				return err
			}
			createdID = out.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := items.GetByID(ctx, createdID); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, items, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		errMarker := assertErr("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := items.Create(ctx, model.Item{Name: "TxRollback"})
			if err != nil {
				return err
			}
			createdID = out.ID
			return errMarker
		})
		if err == nil || err.Error() != errMarker.Error() {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := items.GetByID(ctx, createdID); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})

	t.Run("count_and_list_agree", func(t *testing.T) {
		tx, items, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		seed(t, items, 4)
		err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
			total, err := items.Count(ctx)
			if err != nil {
				return err
			}
			info, err := paging.Compute(paging.Unbounded, total, false)
			if err != nil {
				return err
			}
			list, err := items.List(ctx, repository.WindowFor(info))
			if err != nil {
				return err
			}
			if _, err := paging.NewList(list, info); err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

// assertErr builds a marker error local to the suites.
func assertErr(msg string) error { return &sentinel{msg} }

type sentinel struct{ s string }

func (e *sentinel) Error() string { return e.s }
