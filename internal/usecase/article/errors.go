// Package article provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, listing and
// generating articles, and delegates persistence to the article repository.
package article

import (
	"errors"

	"article-hub/internal/domain/entity"
)

const resourceName = "article"

// errEmptyDraft is wrapped in a ProviderError when a provider returns a draft without title or content.
var errEmptyDraft = errors.New("provider returned an empty draft")

func notFound(id int64) error {
	return &entity.NotFoundError{Resource: resourceName, ID: id}
}

func invalidID() error {
	return entity.NewValidationError("id", "must be a positive integer")
}

// outcome labels an operation result for the article_operations_total metric.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entity.ErrNotFound):
		return "not_found"
	case errors.Is(err, entity.ErrValidationFailed):
		return "invalid"
	default:
		return "error"
	}
}
