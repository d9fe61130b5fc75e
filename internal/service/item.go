package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/paging-service/internal/model"
	"github.com/maxviazov/paging-service/internal/repository"
	"github.com/maxviazov/paging-service/pkg/paging"
)

// itemService holds catalog use-case logic: validation + orchestration, no transport / SQL details.
type itemService struct {
	repo repository.ItemRepository
	tx   repository.TxManager
	opts Options
	log  zerolog.Logger
}

func NewItemService(repo repository.ItemRepository, tx repository.TxManager, opts Options, logger zerolog.Logger) ItemService {
	l := logger.With().Str("module", "service").Str("component", "item").Logger()
	return &itemService{repo: repo, tx: tx, opts: opts.withDefaults(), log: l}
}

func (s *itemService) CreateItem(ctx context.Context, name string) (model.Item, error) {
	start := time.Now()
	original := name
	name = strings.TrimSpace(name)

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln < 2 || ln > 100 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 100"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Str("name_raw", original).Interface("field_errors", ferrs).Msg("item validation failed")
		return model.Item{}, err
	}

	out, err := s.repo.Create(ctx, model.Item{Name: name})
	if err != nil {
		// repository errors are already domain errors
		s.log.Error().Err(err).Str("name", name).Msg("create item failed")
		return model.Item{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("item_id", out.ID).Msg("item created")
	return out, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (model.Item, error) {
	if id <= 0 {
		return model.Item{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

// ListItems counts and reads inside one transaction so the page always holds
// exactly the number of items its info announces. A page past the end is
// clamped to the last one.
func (s *itemService) ListItems(ctx context.Context, page paging.Page) (paging.List[model.Item], error) {
	p := normalizePage(page, s.opts)

	var out paging.List[model.Item]
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		total, err := s.repo.Count(ctx)
		if err != nil {
			return err
		}
		info, err := paging.Compute(p, total, false)
		if err != nil {
			return fromPagingError(err)
		}

		var items []model.Item
		if info.ItemCount() > 0 {
			items, err = s.repo.List(ctx, repository.WindowFor(info))
			if err != nil {
				return err
			}
		}
		out, err = paging.NewList(items, info)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Stringer("page", p).Msg("list items failed")
		return paging.List[model.Item]{}, err
	}
	return out, nil
}
