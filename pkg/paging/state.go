package paging

// State is the minimal description of a page request: the requested page and
// the total number of items. It is the only form that should be persisted or
// sent over the wire; Info is recomputed from it.
type State struct {
	CurrentPage Page `json:"currentPage"`
	TotalItems  int  `json:"totalItems"`
}

// EmptyState holds no request.
var EmptyState = State{}

// NewState validates page and totalItems.
func NewState(page Page, totalItems int) (State, error) {
	const op = "new state"
	if err := page.validate(op); err != nil {
		return EmptyState, err
	}
	if totalItems < 0 {
		return EmptyState, outOfRange(op, "totalItems", totalItems, "must be >= 0")
	}
	return State{CurrentPage: page, TotalItems: totalItems}, nil
}

// HasValue reports whether s describes a usable request.
func (s State) HasValue() bool {
	return s.CurrentPage.IsValid() && s.TotalItems >= 0
}

// TurnToPage returns the descriptor for another page of the same size. It
// deliberately returns a Page rather than a State: the total item count may
// have changed since s was built, so the caller has to supply it again.
func (s State) TurnToPage(number int) Page {
	return s.CurrentPage.TurnToPage(number)
}

// Info computes the paging info of s.
func (s State) Info() (Info, error) {
	return Compute(s.CurrentPage, s.TotalItems, false)
}

// InfoWithPages is Info plus the per-page enumeration.
func (s State) InfoWithPages() (Info, error) {
	return Compute(s.CurrentPage, s.TotalItems, true)
}
