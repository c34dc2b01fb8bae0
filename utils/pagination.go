package utils

// Pagination describes one resolved page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// Paginate resolves a requested 1-based page number against a total count.
// Out-of-range pages are clamped to the nearest valid page, so a request can
// never fail on the page parameter alone. An empty listing resolves to a
// single empty page.
func Paginate(page, pageSize int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Offset returns the SQL offset for the resolved page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
