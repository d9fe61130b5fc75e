package paging

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UnmarshalJSON requires both fields. A negative number is accepted and
// yields an invalid page; a size outside 0..MaxSize, or size 0 past page 1,
// is rejected.
func (p *Page) UnmarshalJSON(data []byte) error {
	const op = "decode page"
	var raw struct {
		Number *int `json:"number"`
		Size   *int `json:"size"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &Error{Op: op, Kind: ErrDeserialization, Msg: err.Error()}
	}
	switch {
	case raw.Number == nil:
		return malformed(op, "number", "is required")
	case raw.Size == nil:
		return malformed(op, "size", "is required")
	case *raw.Size < 0 || *raw.Size > MaxSize:
		return malformed(op, "size", fmt.Sprintf("must be between 0 and %d, got %d", MaxSize, *raw.Size))
	case *raw.Size == 0 && *raw.Number > 1:
		return malformed(op, "size", fmt.Sprintf("must be >= 1 on page %d", *raw.Number))
	}
	*p = Page{Number: *raw.Number, Size: *raw.Size}
	return nil
}

// UnmarshalJSON requires currentPage and totalItems. A negative total is
// accepted and yields a state without value.
func (s *State) UnmarshalJSON(data []byte) error {
	const op = "decode state"
	var raw struct {
		CurrentPage *Page `json:"currentPage"`
		TotalItems  *int  `json:"totalItems"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		if errors.Is(err, ErrDeserialization) {
			return err
		}
		return &Error{Op: op, Kind: ErrDeserialization, Msg: err.Error()}
	}
	switch {
	case raw.CurrentPage == nil:
		return malformed(op, "currentPage", "is required")
	case raw.TotalItems == nil:
		return malformed(op, "totalItems", "is required")
	}
	*s = State{CurrentPage: *raw.CurrentPage, TotalItems: *raw.TotalItems}
	return nil
}

type infoJSON struct {
	CurrentPage     Page       `json:"currentPage"`
	TotalItems      int        `json:"totalItems"`
	TotalPages      int        `json:"totalPages"`
	ItemCount       int        `json:"itemCount"`
	FirstItemNumber int        `json:"firstItemNumber"`
	LastItemNumber  int        `json:"lastItemNumber"`
	IsFirstPage     bool       `json:"isFirstPage"`
	IsLastPage      bool       `json:"isLastPage"`
	FirstPage       Page       `json:"firstPage"`
	PreviousPage    Page       `json:"previousPage"`
	NextPage        Page       `json:"nextPage"`
	LastPage        Page       `json:"lastPage"`
	Pages           []PageSpan `json:"pages,omitempty"`
}

// MarshalJSON writes the effective state followed by every derived field.
// The derived fields are informational; UnmarshalJSON ignores them.
func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(infoJSON{
		CurrentPage:     i.current,
		TotalItems:      i.totalItems,
		TotalPages:      i.totalPages,
		ItemCount:       i.ItemCount(),
		FirstItemNumber: i.span.FirstItemNumber,
		LastItemNumber:  i.span.LastItemNumber,
		IsFirstPage:     i.isFirst,
		IsLastPage:      i.isLast,
		FirstPage:       i.first,
		PreviousPage:    i.previous,
		NextPage:        i.next,
		LastPage:        i.last,
		Pages:           i.pages,
	})
}

// UnmarshalJSON rebuilds i from the persisted state fields alone. The page
// enumeration is recomputed when the payload carried one.
func (i *Info) UnmarshalJSON(data []byte) error {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !s.HasValue() {
		*i = Info{requested: s.CurrentPage, current: s.CurrentPage, totalItems: s.TotalItems}
		return nil
	}
	var extra struct {
		Pages json.RawMessage `json:"pages"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return &Error{Op: "decode info", Kind: ErrDeserialization, Msg: err.Error()}
	}
	withPages := len(extra.Pages) > 0 && string(extra.Pages) != "null"
	info, err := Compute(s.CurrentPage, s.TotalItems, withPages)
	if err != nil {
		return err
	}
	*i = info
	return nil
}
