package gallery

import "glamhaven/pkg/models"

// Pagination returns the pagination view model for the current state
func (b *Browser) Pagination() models.Pagination {
	total := b.TotalPages()
	pages := make([]int, 0, total)
	for p := 1; p <= total; p++ {
		pages = append(pages, p)
	}
	p := models.Pagination{
		CurrentPage: b.page,
		TotalPages:  total,
		PerPage:     b.pageSize,
		Total:       len(b.Filtered()),
		HasPrevious: b.page > 1,
		HasNext:     b.page < total,
		Pages:       pages,
	}
	if p.HasPrevious {
		p.PrevPage = b.page - 1
	}
	if p.HasNext {
		p.NextPage = b.page + 1
	}
	return p
}

// WindowSize is the number of page links in the floating page control
const WindowSize = 5

// Window returns up to size consecutive pages around current, clamped to
// [1, total]. The current page sits in the middle unless it is near an end.
func Window(current, total, size int) []int {
	if total < 1 || size < 1 {
		return nil
	}
	if size > total {
		size = total
	}
	start := current - size/2
	start = max(start, 1)
	start = min(start, total-size+1)
	out := make([]int, size)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// PageWindow returns the window of size pages around the current page
func (b *Browser) PageWindow(size int) []int {
	return Window(b.page, b.TotalPages(), size)
}

// ShowFloatingPagination reports whether the floating page control is rendered
// at all. A single page has nothing to page through.
func (b *Browser) ShowFloatingPagination() bool {
	return b.TotalPages() > 1
}
