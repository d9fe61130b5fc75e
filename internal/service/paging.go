package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/paging-service/internal/metrics"
	"github.com/maxviazov/paging-service/pkg/paging"
)

// CalculateRequest asks for the info of one page. Size 0 on page 1 means unbounded.
type CalculateRequest struct {
	Page         int
	Size         int
	TotalItems   int
	IncludePages bool
}

// TurnRequest moves a persisted state to another page. TotalItems replaces
// the state's total when set; the result is always recomputed.
type TurnRequest struct {
	State        paging.State `json:"state"`
	Page         int          `json:"page"`
	TotalItems   *int         `json:"totalItems,omitempty"`
	IncludePages bool         `json:"pages,omitempty"`
}

type pagingService struct {
	opts Options
	log  zerolog.Logger
}

func NewPagingService(opts Options, logger zerolog.Logger) PagingService {
	l := logger.With().Str("module", "service").Str("component", "paging").Logger()
	return &pagingService{opts: opts.withDefaults(), log: l}
}

func (s *pagingService) Calculate(ctx context.Context, req CalculateRequest) (paging.Info, error) {
	if err := ctx.Err(); err != nil {
		return paging.Info{}, err
	}
	if err := NewInvalidInputError(validatePageRequest(req.Page, req.Size, req.TotalItems, s.opts)); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("paging request validation failed")
		return paging.Info{}, err
	}
	return s.compute(paging.Page{Number: req.Page, Size: req.Size}, req.TotalItems, req.IncludePages)
}

func (s *pagingService) Turn(ctx context.Context, req TurnRequest) (paging.Info, error) {
	if err := ctx.Err(); err != nil {
		return paging.Info{}, err
	}
	var ferrs []FieldError
	if !req.State.HasValue() {
		ferrs = append(ferrs, FieldError{Field: "state", Message: "must hold a page number >= 1 and a total >= 0"})
	}
	if req.Page < 1 {
		ferrs = append(ferrs, FieldError{Field: "page", Message: "must be >= 1"})
	}
	total := req.State.TotalItems
	if req.TotalItems != nil {
		total = *req.TotalItems
		if total < 0 {
			ferrs = append(ferrs, FieldError{Field: "totalItems", Message: "must be >= 0"})
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return paging.Info{}, err
	}

	next := req.State.TurnToPage(req.Page)
	return s.Calculate(ctx, CalculateRequest{
		Page:         next.Number,
		Size:         next.Size,
		TotalItems:   total,
		IncludePages: req.IncludePages,
	})
}

func (s *pagingService) Restore(ctx context.Context, payload []byte, includePages bool) (paging.Info, error) {
	if err := ctx.Err(); err != nil {
		return paging.Info{}, err
	}
	var state paging.State
	if err := json.Unmarshal(payload, &state); err != nil {
		s.log.Debug().Err(err).Msg("paging state rejected")
		return paging.Info{}, err
	}
	if !state.HasValue() {
		var ferrs []FieldError
		if !state.CurrentPage.IsValid() {
			ferrs = append(ferrs, FieldError{Field: "currentPage.number", Message: "must be >= 1"})
		}
		if state.TotalItems < 0 {
			ferrs = append(ferrs, FieldError{Field: "totalItems", Message: "must be >= 0"})
		}
		return paging.Info{}, NewInvalidInputError(ferrs)
	}
	return s.Calculate(ctx, CalculateRequest{
		Page:         state.CurrentPage.Number,
		Size:         state.CurrentPage.Size,
		TotalItems:   state.TotalItems,
		IncludePages: includePages,
	})
}

// compute runs the engine, refusing enumerations larger than the configured cap.
func (s *pagingService) compute(page paging.Page, total int, includePages bool) (paging.Info, error) {
	start := time.Now()
	if includePages && !page.IsUnbounded() && total > 0 {
		pages, err := paging.TotalPages(total, page.Size)
		if err != nil {
			return paging.Info{}, s.fail(err, page, total)
		}
		if pages > s.opts.MaxEnumeratedPages {
			return paging.Info{}, NewInvalidInputError([]FieldError{{
				Field:   "pages",
				Message: fmt.Sprintf("enumeration limited to %d pages, request spans %d", s.opts.MaxEnumeratedPages, pages),
			}})
		}
	}

	info, err := paging.Compute(page, total, includePages)
	if err != nil {
		return paging.Info{}, s.fail(err, page, total)
	}
	metrics.ObserveComputation(info)
	s.log.Debug().
		Stringer("requested", page).
		Int("current", info.PageNumber()).
		Int("total_items", total).
		Int("total_pages", info.TotalPages()).
		Bool("clamped", info.IsClamped()).
		Dur("took", time.Since(start)).
		Msg("paging computed")
	return info, nil
}

func (s *pagingService) fail(err error, page paging.Page, total int) error {
	metrics.ComputationErrors.WithLabelValues(metrics.ErrorKind(err)).Inc()
	s.log.Warn().Err(err).Stringer("page", page).Int("total_items", total).Msg("paging computation rejected")
	return fromPagingError(err)
}
