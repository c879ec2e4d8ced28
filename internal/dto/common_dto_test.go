package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	p := Paginate(2, 10, 35, "totalRequests")

	assert.Equal(t, 2, p["currentPage"])
	assert.Equal(t, 4, p["totalPages"])
	assert.Equal(t, int64(35), p["totalRequests"])
	assert.Equal(t, 10, p["limit"])
	assert.Equal(t, true, p["hasNext"])
	assert.Equal(t, true, p["hasPrev"])
}

func TestPaginateLastPage(t *testing.T) {
	p := Paginate(4, 10, 35, "totalProviders")

	assert.Equal(t, false, p["hasNext"])
	assert.Equal(t, true, p["hasPrev"])
}

func TestPaginateEmptyResult(t *testing.T) {
	p := Paginate(1, 10, 0, "totalCategories")

	assert.Equal(t, 0, p["totalPages"])
	assert.Equal(t, false, p["hasNext"])
	assert.Equal(t, false, p["hasPrev"])
}

func TestListQueryNormalize(t *testing.T) {
	q := &ListQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "desc", q.Order)

	q = &ListQuery{Page: 3, Limit: 500, Order: "asc"}
	q.Normalize()
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, "asc", q.Order)
	assert.Equal(t, 200, q.Offset())
}
