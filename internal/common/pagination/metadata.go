package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page            int   `json:"page"`            // Current page number (1-based)
	PageSize        int   `json:"pageSize"`        // Items per page
	TotalItems      int64 `json:"totalItems"`      // Total number of items across all pages
	TotalPages      int   `json:"totalPages"`      // ceil(TotalItems / PageSize), 0 when empty
	HasNextPage     bool  `json:"hasNextPage"`     // Page < TotalPages
	HasPreviousPage bool  `json:"hasPreviousPage"` // Page > 1
}

// NewMetadata derives the metadata block for one page.
func NewMetadata(params Params, total int64) Metadata {
	totalPages := CalculateTotalPages(total, params.PageSize)
	return Metadata{
		Page:            params.Page,
		PageSize:        params.PageSize,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     params.Page < totalPages,
		HasPreviousPage: params.Page > 1,
	}
}
