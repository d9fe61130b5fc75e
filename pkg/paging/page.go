// Package paging computes pagination metadata for lists split into fixed-size
// or unbounded pages.
//
// Only three numbers ever need to be stored or sent over the wire: the page
// number, the page size and the total item count (see State). Everything a
// paging UI or API response needs is derived from them by Compute, which
// always yields an internally consistent Info.
//
//	info, err := paging.OnPage(3).ItemsPerPage(20).WithTotalItems(119)
//
// All types are immutable values and safe for concurrent use.
package paging

import (
	"cmp"
	"fmt"
)

const (
	// MaxSize is the largest page size a Page can carry.
	MaxSize = 255
	// DefaultSize is used by OnPage when no size is given.
	DefaultSize = 20
	// MaxEnumeratedPages is the largest page count Compute will enumerate.
	MaxEnumeratedPages = 1 << 20
)

var (
	// Unbounded puts every item on a single page.
	Unbounded = Page{Number: 1, Size: 0}
	// Empty is the zero, invalid page.
	Empty = Page{}
)

// Page identifies one page by its one-based number and the number of items
// per page. Size 0 is reserved for Unbounded.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}

// New validates number and size and returns the page they describe.
// New(1, 0) returns Unbounded.
func New(number, size int) (Page, error) {
	const op = "new page"
	if number < 1 {
		return Empty, outOfRange(op, "number", number, "must be >= 1")
	}
	if size < 0 || size > MaxSize {
		return Empty, outOfRange(op, "size", size, fmt.Sprintf("must be between 0 and %d", MaxSize))
	}
	if size == 0 && number != 1 {
		return Empty, outOfRange(op, "size", size, "must be >= 1 for a bounded page")
	}
	return Page{Number: number, Size: size}, nil
}

// OnPage starts a page of DefaultSize items.
func OnPage(number int) Page {
	return Page{Number: number, Size: DefaultSize}
}

// ItemsPerPage starts on page 1 with the given size; size 0 is Unbounded.
func ItemsPerPage(size int) Page {
	return Page{Number: 1, Size: size}
}

// Index is the zero-based page number.
func (p Page) Index() int { return p.Number - 1 }

// IsUnbounded reports whether p puts every item on page 1.
func (p Page) IsUnbounded() bool { return p.Size == 0 && p.Number == 1 }

// IsValid reports whether p has a usable page number.
func (p Page) IsValid() bool { return p.Number >= 1 }

// IsEmpty reports whether p is the zero page.
func (p Page) IsEmpty() bool { return p == Empty }

// OnPage returns a copy of p on another page. A page without a size becomes
// Unbounded.
func (p Page) OnPage(number int) Page {
	if p.Size == 0 {
		return Unbounded
	}
	return Page{Number: number, Size: p.Size}
}

// ItemsPerPage returns a copy of p with another size. Size 0 yields Unbounded.
func (p Page) ItemsPerPage(size int) Page {
	if size == 0 {
		return Unbounded
	}
	return Page{Number: p.Number, Size: size}
}

// TurnToPage returns the descriptor for another page of the same size.
// Pages without a size (unbounded or empty) can only turn to Unbounded,
// because size 0 has no meaning past page 1.
func (p Page) TurnToPage(number int) Page {
	if p.Size == 0 {
		return Unbounded
	}
	return Page{Number: number, Size: p.Size}
}

// WithTotalItems derives the full paging info for p.
func (p Page) WithTotalItems(totalItems int) (Info, error) {
	return Compute(p, totalItems, false)
}

// WithTotalItemsAndPages is WithTotalItems plus the per-page enumeration.
func (p Page) WithTotalItemsAndPages(totalItems int) (Info, error) {
	return Compute(p, totalItems, true)
}

func (p Page) String() string {
	switch {
	case p.IsUnbounded():
		return "page 1 (unbounded)"
	case p.IsEmpty():
		return "page none"
	}
	return fmt.Sprintf("page %d (size %d)", p.Number, p.Size)
}

// Compare orders pages by number, then by size.
func Compare(a, b Page) int {
	if c := cmp.Compare(a.Number, b.Number); c != 0 {
		return c
	}
	return cmp.Compare(a.Size, b.Size)
}

// validate checks p can be used for computing, without clamping.
func (p Page) validate(op string) error {
	if !p.IsValid() {
		return invalid(op, "number", p.Number, "must be >= 1")
	}
	if p.IsUnbounded() {
		return nil
	}
	if p.Size < 1 {
		return invalid(op, "size", p.Size, "must be >= 1 for a bounded page")
	}
	if p.Size > MaxSize {
		return outOfRange(op, "size", p.Size, fmt.Sprintf("must be <= %d", MaxSize))
	}
	return nil
}
