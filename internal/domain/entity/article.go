// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article entity, the partial-update patch type, and the domain error taxonomy
// shared by the usecase, persistence, and HTTP layers.
package entity

import (
	"bytes"
	"encoding/json"
	"time"
)

// Article represents a persisted article.
// ID and CreatedAt are assigned by the store and never change afterwards.
type Article struct {
	ID        int64
	Title     string
	Content   string
	PhotoURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NullableString is a string field that distinguishes "not supplied" from "explicitly null".
// It is used by partial updates where a JSON null clears the column.
type NullableString struct {
	Set   bool    // field was present in the input
	Value *string // nil means SQL NULL
}

// UnmarshalJSON marks the field as present, keeping nil for a JSON null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// ArticlePatch describes a partial update. Nil pointers and unset nullable fields are left untouched.
type ArticlePatch struct {
	Title    *string
	Content  *string
	PhotoURL NullableString
}

// IsEmpty reports whether the patch carries no field at all.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && !p.PhotoURL.Set
}
