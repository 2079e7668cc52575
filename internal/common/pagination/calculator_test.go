package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"article-hub/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{name: "first page", page: 1, pageSize: 10, want: 0},
		{name: "second page", page: 2, pageSize: 10, want: 10},
		{name: "third page size 50", page: 3, pageSize: 50, want: 100},
		{name: "page 2 size 1", page: 2, pageSize: 1, want: 1},
		{name: "page zero guarded", page: 0, pageSize: 10, want: 0},
		{name: "max page saturates", page: math.MaxInt, pageSize: 50, want: math.MaxInt},
		{name: "just below overflow", page: math.MaxInt/50 + 1, pageSize: 50, want: math.MaxInt / 50 * 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagination.CalculateOffset(tt.page, tt.pageSize))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "empty collection", total: 0, pageSize: 10, want: 0},
		{name: "less than one page", total: 3, pageSize: 10, want: 1},
		{name: "exactly one page", total: 10, pageSize: 10, want: 1},
		{name: "one over", total: 11, pageSize: 10, want: 2},
		{name: "page size one", total: 3, pageSize: 1, want: 3},
		{name: "max page size", total: 101, pageSize: 50, want: 3},
		{name: "invalid page size", total: 10, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagination.CalculateTotalPages(tt.total, tt.pageSize))
		})
	}
}

// totalPages = ceil(total/size) and hasNextPage <=> page < totalPages for every valid combination.
func TestNewMetadata_Properties(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 50; size++ {
		for total := int64(0); total <= 120; total += 7 {
			for page := 1; page <= 5; page++ {
				meta := pagination.NewMetadata(pagination.Params{Page: page, PageSize: size}, total)

				wantPages := int(total / int64(size))
				if total%int64(size) != 0 {
					wantPages++
				}
				if meta.TotalPages != wantPages {
					t.Fatalf("size=%d total=%d: TotalPages=%d want %d", size, total, meta.TotalPages, wantPages)
				}
				if meta.HasNextPage != (page < wantPages) {
					t.Fatalf("size=%d total=%d page=%d: HasNextPage=%v", size, total, page, meta.HasNextPage)
				}
				if meta.HasPreviousPage != (page > 1) {
					t.Fatalf("page=%d: HasPreviousPage=%v", page, meta.HasPreviousPage)
				}
			}
		}
	}
}

func TestNewMetadata_Scenario(t *testing.T) {
	t.Parallel()

	meta := pagination.NewMetadata(pagination.Params{Page: 2, PageSize: 1, Sort: pagination.SortDesc}, 3)

	assert.Equal(t, pagination.Metadata{
		Page:            2,
		PageSize:        1,
		TotalItems:      3,
		TotalPages:      3,
		HasNextPage:     true,
		HasPreviousPage: true,
	}, meta)
}

func TestNewResponse_NilData(t *testing.T) {
	t.Parallel()

	resp := pagination.NewResponse[string](nil, pagination.Metadata{})
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}
