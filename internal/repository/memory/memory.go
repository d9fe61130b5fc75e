// Package memory is an in-process implementation of the repository
// contracts, used when no database is configured and in tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/maxviazov/paging-service/internal/model"
	"github.com/maxviazov/paging-service/internal/repository"
)

// Store holds items ordered by id. Writes and transactions are serialized by
// txMu; reads take the data lock only.
type Store struct {
	txMu sync.Mutex

	mu     sync.RWMutex
	items  []model.Item
	nextID int64
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{nextID: 1, now: func() time.Time { return time.Now().UTC() }}
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// lockWrite serializes a write with running transactions unless ctx already
// belongs to one.
func (s *Store) lockWrite(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

type snapshot struct {
	items  []model.Item
	nextID int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{items: slices.Clone(s.items), nextID: s.nextID}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = snap.items
	s.nextID = snap.nextID
}

type txManager struct{ store *Store }

// NewTxManager runs units of work one at a time; a failing unit leaves the
// store as it found it.
func NewTxManager(store *Store) repository.TxManager { return &txManager{store: store} }

func (m *txManager) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	snap := m.store.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

type itemRepository struct{ store *Store }

func NewItemRepository(store *Store) repository.ItemRepository {
	return &itemRepository{store: store}
}

func (r *itemRepository) Create(ctx context.Context, it model.Item) (model.Item, error) {
	if err := ctx.Err(); err != nil {
		return model.Item{}, err
	}
	defer r.store.lockWrite(ctx)()

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Name == it.Name {
			return model.Item{}, repository.ErrAlreadyExists
		}
	}
	now := s.now()
	it.ID = s.nextID
	it.CreatedAt, it.UpdatedAt = now, now
	s.nextID++
	s.items = append(s.items, it)
	return it, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	if err := ctx.Err(); err != nil {
		return model.Item{}, err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := slices.BinarySearchFunc(s.items, id, func(it model.Item, id int64) int {
		switch {
		case it.ID < id:
			return -1
		case it.ID > id:
			return 1
		}
		return 0
	})
	if !ok {
		return model.Item{}, repository.ErrNotFound
	}
	return s.items[i], nil
}

func (r *itemRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.items), nil
}

func (r *itemRepository) List(ctx context.Context, w repository.Window) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := min(max(w.Offset, 0), len(s.items))
	end := len(s.items)
	if w.Limit > 0 {
		end = min(start+w.Limit, end)
	}
	return slices.Clone(s.items[start:end]), nil
}

func (r *itemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case err == repository.ErrNotFound:
		return false, nil
	}
	return false, err
}

type pinger struct{}

// NewPinger reports the in-process store as always ready.
func NewPinger() repository.Pinger { return pinger{} }

func (pinger) Ping(ctx context.Context) error { return ctx.Err() }

var (
	_ repository.ItemRepository = (*itemRepository)(nil)
	_ repository.TxManager      = (*txManager)(nil)
)
