// Package paginator slices an in-memory collection into fixed-size pages
// and builds the compact page strip shown under list tables.
//
// Every function here is pure. Callers own the current page and are
// expected to pass a positive page size and a page number of at least 1.
package paginator

const (
	DefaultPageSize = 10

	// visiblePages is the length of the contiguous run in a long strip.
	// Strips with at most visiblePages+2 pages (the first and last
	// islands included) are emitted in full.
	visiblePages = 5
)

type Window struct {
	PageSize    int `json:"page_size"`
	CurrentPage int `json:"page"`
	TotalItems  int `json:"count"`
	TotalPages  int `json:"total_pages"`
	StartIndex  int `json:"start_index"`
	EndIndex    int `json:"end_index"`
}

// ComputeWindow derives the slice boundaries for currentPage. A page past
// the end yields an empty window pinned at totalItems instead of an
// out-of-range start index.
func ComputeWindow(totalItems, currentPage, pageSize int) Window {

	totalPages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		totalPages++
	}

	startIndex := (currentPage - 1) * pageSize
	if startIndex > totalItems {
		startIndex = totalItems
	}

	endIndex := min(startIndex+pageSize, totalItems)

	return Window{
		PageSize:    pageSize,
		CurrentPage: currentPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		StartIndex:  startIndex,
		EndIndex:    endIndex,
	}
}

// Slice returns the records visible in w. It never panics on a window that
// does not fit the collection; it returns an empty slice instead.
func Slice[T any](collection []T, w Window) []T {

	start, end := w.StartIndex, w.EndIndex
	if start < 0 || start > len(collection) || end < start {
		return []T{}
	}

	end = min(end, len(collection))

	return collection[start:end:end]
}

// BuildPageStrip lists the page numbers to render for navigation, folding
// long sequences around currentPage with ellipsis markers.
func BuildPageStrip(currentPage, totalPages int) []PageItem {

	strip := make([]PageItem, 0, visiblePages+4)

	if totalPages <= visiblePages+2 {
		for i := 1; i <= totalPages; i++ {
			strip = append(strip, Page(i))
		}

		return strip
	}

	start := max(2, currentPage-2)
	end := min(totalPages-1, currentPage+2)

	if currentPage <= 3 {
		start = 2
		end = 5
	}

	if currentPage >= totalPages-2 {
		start = totalPages - 4
		end = totalPages - 1
	}

	strip = append(strip, Page(1))
	if start > 2 {
		strip = append(strip, Ellipsis())
	}

	for i := start; i <= end; i++ {
		strip = append(strip, Page(i))
	}

	if end < totalPages-1 {
		strip = append(strip, Ellipsis())
	}

	if totalPages > 1 {
		strip = append(strip, Page(totalPages))
	}

	return strip
}

// Clamp pulls page back into [1, max(totalPages, 1)].
func Clamp(page, totalPages int) int {

	upper := max(totalPages, 1)
	if page > upper {
		return upper
	}

	if page < 1 {
		return 1
	}

	return page
}
