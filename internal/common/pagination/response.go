package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., article.DTO).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Items of the current page, never null
	Pagination Metadata `json:"pagination"` // Pagination metadata
}

// NewResponse creates a new paginated response with data and metadata.
// A nil slice is rendered as an empty JSON array.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
