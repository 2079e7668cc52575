package entity

import "strings"

// Validate checks the invariants every persisted article must hold.
// It returns a ValidationError listing each broken rule, or nil.
func (a *Article) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(a.Title) == "" {
		verr.Add("title", "is required")
	}
	if strings.TrimSpace(a.Content) == "" {
		verr.Add("content", "is required")
	}
	if !a.CreatedAt.IsZero() && !a.UpdatedAt.IsZero() && a.UpdatedAt.Before(a.CreatedAt) {
		verr.Add("updatedAt", "must not be before createdAt")
	}
	if verr.HasViolations() {
		return verr
	}
	return nil
}

// Validate checks that the patch changes something and that any title or
// content it carries is non-blank.
func (p ArticlePatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationError("body", "at least one field must be provided")
	}
	verr := &ValidationError{}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		verr.Add("title", "must not be empty")
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		verr.Add("content", "must not be empty")
	}
	if verr.HasViolations() {
		return verr
	}
	return nil
}
