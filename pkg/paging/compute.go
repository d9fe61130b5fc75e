package paging

import (
	"fmt"
	"math"
)

// TotalPages is ceil(totalItems / size). It refuses a size below 1 and a
// total so large that totalItems+size-1 does not fit in an int.
func TotalPages(totalItems, size int) (int, error) {
	const op = "total pages"
	if size < 1 {
		return 0, invalid(op, "size", size, "must be >= 1")
	}
	if totalItems < 0 {
		return 0, outOfRange(op, "totalItems", totalItems, "must be >= 0")
	}
	if totalItems > math.MaxInt-(size-1) {
		return 0, overflow(op, "totalItems", totalItems, "too large for the page size")
	}
	return (totalItems + size - 1) / size, nil
}

// Compute derives everything about page within a collection of totalItems.
//
// A page number past the end is clamped to the last page; it is the only
// input Compute corrects instead of rejecting. With includeAllPages the
// result also enumerates the item range of every page, which costs
// O(TotalPages); more than MaxEnumeratedPages pages is out of range.
func Compute(page Page, totalItems int, includeAllPages bool) (Info, error) {
	const op = "compute"
	if err := page.validate(op); err != nil {
		return Info{}, err
	}
	if totalItems < 0 {
		return Info{}, outOfRange(op, "totalItems", totalItems, "must be >= 0")
	}

	switch {
	case page.IsUnbounded():
		return single(page, page, totalItems, includeAllPages), nil
	case totalItems == 0:
		return single(page, Page{Number: 1, Size: page.Size}, 0, includeAllPages), nil
	}

	totalPages, err := TotalPages(totalItems, page.Size)
	if err != nil {
		return Info{}, err
	}
	if includeAllPages && totalPages > MaxEnumeratedPages {
		return Info{}, outOfRange(op, "pages", totalPages, fmt.Sprintf("must be <= %d to enumerate", MaxEnumeratedPages))
	}

	current := page
	if current.Number > totalPages {
		current.Number = totalPages
	}
	isFirst := current.Number == 1
	isLast := current.Number == totalPages

	info := Info{
		requested:  page,
		current:    current,
		totalItems: totalItems,
		totalPages: totalPages,
		span:       ItemRange(current.Number, current.Size, totalItems, isLast),
		isFirst:    isFirst,
		isLast:     isLast,
		first:      current,
		previous:   Empty,
		next:       Empty,
		last:       current,
	}
	if !isFirst {
		info.first = Page{Number: 1, Size: current.Size}
		info.previous = Page{Number: current.Number - 1, Size: current.Size}
	}
	if !isLast {
		info.last = Page{Number: totalPages, Size: current.Size}
		info.next = Page{Number: current.Number + 1, Size: current.Size}
	}
	if includeAllPages {
		info.pages = enumerate(current, totalPages, totalItems)
	}
	return info, nil
}

// single builds the one-page result shared by unbounded pages and empty
// collections.
func single(requested, current Page, totalItems int, includeAllPages bool) Info {
	span := ItemRange(current.Number, current.Size, totalItems, true)
	info := Info{
		requested:  requested,
		current:    current,
		totalItems: totalItems,
		totalPages: 1,
		span:       span,
		isFirst:    true,
		isLast:     true,
		first:      current,
		previous:   Empty,
		next:       Empty,
		last:       current,
	}
	if includeAllPages {
		info.pages = []PageSpan{{Span: span, IsCurrent: true, IsLastPage: true}}
	}
	return info
}

func enumerate(current Page, totalPages, totalItems int) []PageSpan {
	pages := make([]PageSpan, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		isLast := n == totalPages
		pages = append(pages, PageSpan{
			Span:       ItemRange(n, current.Size, totalItems, isLast),
			IsCurrent:  n == current.Number,
			IsLastPage: isLast,
		})
	}
	return pages
}

// TurnToPage re-derives the descriptor of s for page number and computes it
// against totalItems from scratch. The total stored in s is never reused.
func TurnToPage(s State, number, totalItems int, includeAllPages bool) (Info, error) {
	return Compute(s.TurnToPage(number), totalItems, includeAllPages)
}
