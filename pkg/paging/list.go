package paging

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// List is one page of items together with the paging info describing it.
// It is read-only; build a new List for another page.
type List[T any] struct {
	items []T
	info  Info
}

// NewList attaches info to items. The number of items must match the
// number of items info says the page holds.
func NewList[T any](items []T, info Info) (List[T], error) {
	if !info.HasValue() {
		return List[T]{}, &Error{Op: "new list", Kind: ErrInvalidArgument, Msg: "paging info has no value"}
	}
	if len(items) != info.ItemCount() {
		return List[T]{}, &Error{
			Op:    "new list",
			Field: "items",
			Value: len(items),
			Kind:  ErrItemCountMismatch,
			Msg:   fmt.Sprintf("must hold %d items for %s", info.ItemCount(), info.CurrentPage()),
		}
	}
	return List[T]{items: slices.Clone(items), info: info}, nil
}

func (l List[T]) Len() int     { return len(l.items) }
func (l List[T]) At(i int) T   { return l.items[i] }
func (l List[T]) Info() Info   { return l.info }
func (l List[T]) State() State { return l.info.State() }

// Items returns a copy of the page items.
func (l List[T]) Items() []T { return slices.Clone(l.items) }

// All yields the items with their zero-based position in the whole
// collection, not in the page.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		offset := l.info.FirstItemIndex()
		for i, it := range l.items {
			if !yield(offset+i, it) {
				return
			}
		}
	}
}

func (l List[T]) MarshalJSON() ([]byte, error) {
	items := l.items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(struct {
		Items  []T  `json:"items"`
		Paging Info `json:"paging"`
	}{Items: items, Paging: l.info})
}
