package utils

// PageWindow holds validated pagination input.
type PageWindow struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the window.
func (w PageWindow) Offset() int {
	return (w.Page - 1) * w.Limit
}

// ValidPageWindow reports whether page and limit are inside the accepted
// bounds: page >= 1, limit between 1 and 100.
func ValidPageWindow(page, limit int) bool {
	return page >= 1 && limit >= 1 && limit <= 100
}

// TotalPages computes ceil(totalCount/limit), with a floor of 1 so an empty
// result set still reports one page.
func TotalPages(totalCount int64, limit int) int {
	if totalCount == 0 {
		return 1
	}
	return int((totalCount + int64(limit) - 1) / int64(limit))
}
