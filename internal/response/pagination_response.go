package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination builds the page metadata for a 1-based page of pageSize items
// where count items were actually returned.
func NewPagination(page, pageSize int, totalItems int64, count int) *Pagination {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := (totalItems + int64(pageSize) - 1) / int64(pageSize)
	from := (page-1)*pageSize + 1
	to := from + count - 1
	if count == 0 {
		from, to = 0, 0
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
