package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateQueryAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative values reset", PaginateQuery{Page: -2, Limit: -5}, DefaultPage, DefaultLimit},
		{"valid values kept", PaginateQuery{Page: 3, Limit: 50}, 3, 50},
		{"limit capped", PaginateQuery{Page: 1, Limit: 500}, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Adjust()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestPaginateQueryOffset(t *testing.T) {
	assert.Equal(t, 0, PaginateQuery{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, PaginateQuery{Page: 3, Limit: 20}.Offset())
}

func TestPaginator(t *testing.T) {
	p := Paginator{Total: 45, Count: 20, PerPage: 20, CurrentPage: 2}

	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNextPage())
	assert.True(t, p.HasPreviousPage())

	last := Paginator{Total: 45, PerPage: 20, CurrentPage: 3}
	assert.False(t, last.HasNextPage())

	empty := Paginator{}
	assert.Equal(t, 0, empty.TotalPages())
}
