package paging

// Info is the full metadata derived from a State by Compute. It cannot be
// built field by field and never reports a current page past the end.
type Info struct {
	requested  Page
	current    Page
	totalItems int
	totalPages int
	span       Span

	isFirst bool
	isLast  bool

	first    Page
	previous Page
	next     Page
	last     Page

	pages []PageSpan
}

// HasValue reports whether i came out of a successful computation.
func (i Info) HasValue() bool { return i.totalPages >= 1 }

// State is the effective state behind i, with the current page clamped.
func (i Info) State() State {
	return State{CurrentPage: i.current, TotalItems: i.totalItems}
}

// Requested is the page that was asked for, before clamping.
func (i Info) Requested() Page { return i.requested }

// IsClamped reports whether the requested page was past the end.
func (i Info) IsClamped() bool { return i.requested.Number != i.current.Number }

// CurrentPage is the effective page, never past the last one.
func (i Info) CurrentPage() Page { return i.current }

// PageNumber is the one-based number of the current page.
func (i Info) PageNumber() int { return i.current.Number }

// PageIndex is the zero-based number of the current page.
func (i Info) PageIndex() int { return i.current.Index() }

// PageSize is the number of items per page, 0 when unbounded.
func (i Info) PageSize() int { return i.current.Size }

// IsUnbounded reports whether all items sit on a single page.
func (i Info) IsUnbounded() bool { return i.current.IsUnbounded() }

// TotalItems is the size of the whole collection.
func (i Info) TotalItems() int { return i.totalItems }

// TotalPages is at least 1, even for an empty collection.
func (i Info) TotalPages() int { return i.totalPages }

// ItemCount is the number of items shown on the current page.
func (i Info) ItemCount() int { return i.span.Count() }

func (i Info) FirstItemNumber() int { return i.span.FirstItemNumber }
func (i Info) LastItemNumber() int  { return i.span.LastItemNumber }
func (i Info) FirstItemIndex() int  { return i.span.FirstItemIndex() }
func (i Info) LastItemIndex() int   { return i.span.LastItemIndex() }
func (i Info) Span() Span           { return i.span }

func (i Info) IsFirstPage() bool { return i.isFirst }
func (i Info) IsLastPage() bool  { return i.isLast }
func (i Info) HasPrevious() bool { return !i.previous.IsEmpty() }
func (i Info) HasNext() bool     { return !i.next.IsEmpty() }

// FirstPage, PreviousPage, NextPage and LastPage return Empty when not applicable.
func (i Info) FirstPage() Page    { return i.first }
func (i Info) PreviousPage() Page { return i.previous }
func (i Info) NextPage() Page     { return i.next }
func (i Info) LastPage() Page     { return i.last }

// Pages returns the per-page enumeration, or nil if it was not requested.
func (i Info) Pages() []PageSpan {
	if i.pages == nil {
		return nil
	}
	out := make([]PageSpan, len(i.pages))
	copy(out, i.pages)
	return out
}

// TurnToPage returns the descriptor for another page of the same size.
// Recompute it with a fresh total, or use Recalculate.
func (i Info) TurnToPage(number int) Page {
	return i.current.TurnToPage(number)
}

// Recalculate turns to page number and computes it against totalItems,
// keeping the page enumeration if i had one.
func (i Info) Recalculate(number, totalItems int) (Info, error) {
	return Compute(i.TurnToPage(number), totalItems, i.pages != nil)
}
