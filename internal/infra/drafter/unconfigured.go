package drafter

import (
	"context"
	"fmt"

	"article-hub/internal/domain/entity"
	"article-hub/internal/usecase/article"
)

// Unconfigured stands in for a provider that cannot be used.
// Every call fails with a ProviderError wrapping entity.ErrProviderNotConfigured.
type Unconfigured struct {
	name   string
	reason string
}

// NewUnconfigured creates an Unconfigured drafter for the named provider.
func NewUnconfigured(name, reason string) *Unconfigured {
	return &Unconfigured{name: name, reason: reason}
}

func (u *Unconfigured) Name() string { return u.name }

func (u *Unconfigured) Draft(context.Context, article.DraftRequest) (*article.Draft, error) {
	return nil, &entity.ProviderError{
		Provider: u.name,
		Err:      fmt.Errorf("%w: %s", entity.ErrProviderNotConfigured, u.reason),
	}
}

func (u *Unconfigured) Health() article.ProviderHealth {
	return article.ProviderHealth{Provider: u.name, Message: u.reason}
}
