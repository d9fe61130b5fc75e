package repository

import "github.com/maxviazov/paging-service/pkg/paging"

// Window is the limit/offset slice a repository reads for one page.
// Limit 0 means no limit.
type Window struct {
	Limit  int
	Offset int
}

// WindowFor converts computed paging info into the rows to fetch. The info
// is already clamped, so the offset never points past the last item.
// Unbounded pages and empty collections read from the start without a limit.
func WindowFor(info paging.Info) Window {
	if info.IsUnbounded() || info.ItemCount() == 0 {
		return Window{}
	}
	return Window{Limit: info.PageSize(), Offset: info.FirstItemIndex()}
}
