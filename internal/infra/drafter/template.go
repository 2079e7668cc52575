package drafter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"text/template"

	"article-hub/internal/domain/entity"
	"article-hub/internal/usecase/article"
	"article-hub/internal/utils/text"
)

const maxTitleRunes = 120

var errNoTopic = errors.New("no user message to draft from")

var bodyTemplate = template.Must(template.New("draft").Parse(`# {{.Title}}
{{if .Tone}}
_Tone: {{.Tone}}_
{{end}}
## Overview

This article covers {{.Topic}}.
{{if .Keywords}}
## Key points
{{range .Keywords}}
- {{.}}{{end}}
{{end}}
## Next steps

Replace this placeholder text with the final copy before publishing.
`))

// Template is a deterministic, offline drafter.
// The topic is the last user message; Tone and Keywords shape the body.
type Template struct{}

// NewTemplate creates a Template drafter.
func NewTemplate() *Template {
	return &Template{}
}

func (t *Template) Name() string { return ProviderTemplate }

// Health always reports the template drafter as available; it has no external dependency.
func (t *Template) Health() article.ProviderHealth {
	return article.ProviderHealth{Provider: ProviderTemplate, Configured: true}
}

// Draft builds a placeholder article. The same request always yields the same draft.
func (t *Template) Draft(_ context.Context, req article.DraftRequest) (*article.Draft, error) {
	topic := text.FirstLine(req.LastUserContent())
	if topic == "" {
		return nil, &entity.ProviderError{Provider: ProviderTemplate, Err: errNoTopic}
	}

	title := text.Truncate(topic, maxTitleRunes)

	var keywords []string
	for _, k := range req.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Title    string
		Topic    string
		Tone     string
		Keywords []string
	}{
		Title:    title,
		Topic:    topic,
		Tone:     strings.TrimSpace(req.Tone),
		Keywords: keywords,
	})
	if err != nil {
		return nil, &entity.ProviderError{Provider: ProviderTemplate, Err: err}
	}

	return &article.Draft{Title: title, Content: buf.String()}, nil
}
