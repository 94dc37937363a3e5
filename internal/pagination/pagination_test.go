package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	req := PageRequest{}
	req.Defaults(20)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.PageSize)

	req = PageRequest{Page: 3, PageSize: 5}
	req.Defaults(20)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 5, req.PageSize)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name       string
		req        PageRequest
		want       []int
		totalPages int
	}{
		{"first page", PageRequest{Page: 1, PageSize: 4}, []int{1, 2, 3, 4}, 2},
		{"last partial page", PageRequest{Page: 2, PageSize: 4}, []int{5, 6}, 2},
		{"past the end", PageRequest{Page: 5, PageSize: 4}, []int{}, 2},
		{"exact fit", PageRequest{Page: 1, PageSize: 6}, []int{1, 2, 3, 4, 5, 6}, 1},
		{"huge page does not wrap around", PageRequest{Page: math.MaxInt, PageSize: 100}, []int{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.req)
			assert.Equal(t, tt.want, got.Data)
			assert.Equal(t, int64(6), got.TotalItems)
			assert.Equal(t, tt.totalPages, got.TotalPages)
			assert.Equal(t, tt.req.Page, got.Page)
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want int
	}{
		{"first page", PageRequest{Page: 1, PageSize: 20}, 0},
		{"third page", PageRequest{Page: 3, PageSize: 20}, 40},
		{"unset page", PageRequest{PageSize: 20}, 0},
		{"saturates", PageRequest{Page: math.MaxInt, PageSize: 100}, math.MaxInt},
		{"largest exact", PageRequest{Page: math.MaxInt/2 + 1, PageSize: 2}, math.MaxInt - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Offset())
		})
	}
}

func TestNewPageResponse_NilData(t *testing.T) {
	got := NewPageResponse[string](nil, 1, 10, 0)
	assert.NotNil(t, got.Data)
	assert.Zero(t, got.TotalPages)
}
