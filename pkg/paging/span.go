package paging

// Span is the one-based range of item numbers covered by a page.
// FirstItemNumber and LastItemNumber are both 0 when the page holds no items.
type Span struct {
	PageNumber      int `json:"page"`
	FirstItemNumber int `json:"first"`
	LastItemNumber  int `json:"last"`
}

// Count is the number of items in the span.
func (s Span) Count() int {
	if s.FirstItemNumber < 1 {
		return 0
	}
	return s.LastItemNumber - s.FirstItemNumber + 1
}

func (s Span) FirstItemIndex() int { return s.FirstItemNumber - 1 }

func (s Span) LastItemIndex() int { return s.LastItemNumber - 1 }

// PageSpan is one entry of the full page enumeration.
type PageSpan struct {
	Span
	IsCurrent  bool `json:"isCurrent"`
	IsLastPage bool `json:"isLastPage"`
}

// ItemRange returns the items covered by pageNumber. The last page is cut
// at totalItems. An unbounded size or an empty collection collapses to a
// single page 1 spanning every item.
//
// ItemRange does not check pageNumber against the total page count; callers
// must clamp it first (Compute does).
func ItemRange(pageNumber, pageSize, totalItems int, isLastPage bool) Span {
	if pageSize >= 1 && totalItems > 0 {
		last := pageNumber * pageSize
		first := last - pageSize + 1
		if isLastPage {
			last = totalItems
		}
		return Span{PageNumber: pageNumber, FirstItemNumber: first, LastItemNumber: last}
	}
	first := 0
	if totalItems > 0 {
		first = 1
	}
	return Span{PageNumber: 1, FirstItemNumber: first, LastItemNumber: totalItems}
}
