package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
}

func TestNullableString_UnmarshalJSON(t *testing.T) {
	type body struct {
		PhotoURL NullableString `json:"photoUrl"`
	}

	tests := []struct {
		name    string
		input   string
		wantSet bool
		wantVal *string
	}{
		{name: "absent", input: `{}`, wantSet: false},
		{name: "null", input: `{"photoUrl": null}`, wantSet: true},
		{name: "value", input: `{"photoUrl": "https://example.com/a.png"}`, wantSet: true, wantVal: strPtr("https://example.com/a.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.input), &b))
			assert.Equal(t, tt.wantSet, b.PhotoURL.Set)
			assert.Equal(t, tt.wantVal, b.PhotoURL.Value)
		})
	}
}

func TestNullableString_RejectsNonString(t *testing.T) {
	var n NullableString
	err := json.Unmarshal([]byte(`123`), &n)
	assert.Error(t, err)
}

func TestArticlePatch_IsEmpty(t *testing.T) {
	title := "x"

	assert.True(t, ArticlePatch{}.IsEmpty())
	assert.False(t, ArticlePatch{Title: &title}.IsEmpty())
	assert.False(t, ArticlePatch{PhotoURL: NullableString{Set: true}}.IsEmpty())
	assert.False(t, ArticlePatch{PhotoURL: NullableString{Set: true, Value: strPtr("u")}}.IsEmpty())
}

func strPtr(s string) *string { return &s }
