package dto

// Paginate builds the standard pagination envelope. totalKey names the
// per-entity total field (totalRequests, totalProviders, ...).
func Paginate(page, limit int, total int64, totalKey string) map[string]interface{} {
	if limit <= 0 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return map[string]interface{}{
		"currentPage": page,
		"totalPages":  totalPages,
		totalKey:      total,
		"limit":       limit,
		"hasNext":     page < totalPages,
		"hasPrev":     page > 1,
	}
}

// ListQuery carries the shared pagination/sort query params.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	SortBy string `query:"sortBy"`
	Order  string `query:"order"`
}

// Normalize applies the defaults used across every listing endpoint.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}
}

func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
