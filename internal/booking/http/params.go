package http

import (
	"net/http"
	"strconv"

	"github.com/castlinehq/castline/internal/booking/store"
)

// pageFromQuery reads ?page= and ?limit= into store paging. Pages are
// 1-based; bad or absent values fall back to driver defaults.
func pageFromQuery(r *http.Request) store.Page {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	pageNo, _ := strconv.Atoi(q.Get("page"))
	if pageNo < 1 {
		pageNo = 1
	}
	if limit < 0 {
		limit = 0
	}

	offset := 0
	if limit > 0 {
		offset = (pageNo - 1) * limit
	}
	return store.Page{Limit: limit, Offset: offset}
}

// listResponse wraps paginated collections.
type listResponse[T any] struct {
	Results []T `json:"results"`
	Page    int `json:"page"`
	Limit   int `json:"limit"`
	Total   int `json:"total,omitempty"`
}

func newListResponse[T any](r *http.Request, results []T, total int) listResponse[T] {
	q := r.URL.Query()
	pageNo, _ := strconv.Atoi(q.Get("page"))
	if pageNo < 1 {
		pageNo = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = 20
	}
	if results == nil {
		results = []T{}
	}
	return listResponse[T]{Results: results, Page: pageNo, Limit: limit, Total: total}
}
