package service

const (
	defaultPage     = 1
	defaultPageSize = 25
	maxPageSize     = 100
)

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int64 `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// normalizePage clamps page inputs to sane values and returns limit/offset.
func normalizePage(page, pageSize int) (normPage, normSize, limit, offset int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

func newPagination(page, pageSize int, total int64) Pagination {
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	return Pagination{Page: page, PageSize: pageSize, TotalPages: totalPages, TotalItems: total}
}
