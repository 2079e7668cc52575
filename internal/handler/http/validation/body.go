package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"article-hub/internal/domain/entity"
	artUC "article-hub/internal/usecase/article"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

const (
	roleSystem = artUC.RoleSystem
	roleUser   = artUC.RoleUser
)

type createBody struct {
	Title    *string `json:"title" validate:"required,notblank"`
	Content  *string `json:"content" validate:"required,notblank"`
	PhotoURL *string `json:"photoUrl" validate:"omitnil,max=2048"`
}

type updateBody struct {
	Title    *string `json:"title" validate:"omitnil,notblank"`
	Content  *string `json:"content" validate:"omitnil,notblank"`
	PhotoURL *string `json:"photoUrl" validate:"omitnil,max=2048"`
}

type messageBody struct {
	Role    *string `json:"role" validate:"required,oneof=system user assistant"`
	Content *string `json:"content"`
	Name    string  `json:"name" validate:"max=64"`
}

type generateBody struct {
	Model    *string       `json:"model" validate:"required,notblank,max=128"`
	Messages []messageBody `json:"messages" validate:"required,min=1,dive"`
	Tone     string        `json:"tone" validate:"max=64"`
	Keywords []string      `json:"keywords" validate:"max=20,dive,notblank,max=64"`
}

// DecodeCreate reads a create request: title and content are required non-blank
// strings, photoUrl is an optional nullable string.
func DecodeCreate(r *http.Request) (artUC.CreateInput, error) {
	obj, err := decodeObject(r)
	if err != nil {
		return artUC.CreateInput{}, err
	}

	verr := &violations{}
	obj.rejectUnknown(verr, "", "title", "content", "photoUrl")

	var body createBody
	obj.string(verr, "title", &body.Title)
	obj.string(verr, "content", &body.Content)
	obj.string(verr, "photoUrl", &body.PhotoURL)
	bodyValidator.check(body, verr)

	if err := verr.err(); err != nil {
		return artUC.CreateInput{}, err
	}
	return artUC.CreateInput{
		Title:    *body.Title,
		Content:  *body.Content,
		PhotoURL: body.PhotoURL,
	}, nil
}

// DecodeUpdate reads a partial update. At least one field must be present;
// supplied title and content must be non-blank, and a null photoUrl clears it.
func DecodeUpdate(r *http.Request) (entity.ArticlePatch, error) {
	obj, err := decodeObject(r)
	if err != nil {
		return entity.ArticlePatch{}, err
	}

	verr := &violations{}
	obj.rejectUnknown(verr, "", "title", "content", "photoUrl")

	var body updateBody
	var photo entity.NullableString
	obj.nonNullString(verr, "title", &body.Title)
	obj.nonNullString(verr, "content", &body.Content)
	obj.value(verr, "photoUrl", &photo, "must be a string")
	body.PhotoURL = photo.Value
	bodyValidator.check(body, verr)

	patch := entity.ArticlePatch{Title: body.Title, Content: body.Content, PhotoURL: photo}
	if patch.IsEmpty() && !verr.HasViolations() {
		verr.add("body", "at least one of title, content, photoUrl must be provided")
	}

	if err := verr.err(); err != nil {
		return entity.ArticlePatch{}, err
	}
	return patch, nil
}

// DecodeGenerate reads a generate request: a model id and an ordered list of
// role-tagged messages, plus optional tone and keywords hints.
func DecodeGenerate(r *http.Request) (artUC.DraftRequest, error) {
	obj, err := decodeObject(r)
	if err != nil {
		return artUC.DraftRequest{}, err
	}

	verr := &violations{}
	obj.rejectUnknown(verr, "", "model", "messages", "tone", "keywords")

	var body generateBody
	obj.string(verr, "model", &body.Model)
	obj.value(verr, "tone", &body.Tone, "must be a string")
	obj.value(verr, "keywords", &body.Keywords, "must be an array of strings")
	body.Messages = obj.messages(verr)
	bodyValidator.check(body, verr)

	if err := verr.err(); err != nil {
		return artUC.DraftRequest{}, err
	}

	req := artUC.DraftRequest{
		Model:    strings.TrimSpace(*body.Model),
		Messages: make([]artUC.Message, 0, len(body.Messages)),
		Tone:     strings.TrimSpace(body.Tone),
		Keywords: body.Keywords,
	}
	for _, m := range body.Messages {
		req.Messages = append(req.Messages, artUC.Message{
			Role:    *m.Role,
			Content: m.Content,
			Name:    m.Name,
		})
	}
	return req, nil
}

// object is a JSON object whose members are decoded one at a time.
type object map[string]json.RawMessage

// decodeObject reads the request body as a single JSON object.
// Oversized bodies return the *http.MaxBytesError unchanged.
func decodeObject(r *http.Request) (object, error) {
	if r.Body == nil {
		return nil, entity.NewValidationError("body", "is required")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))

	var obj object
	if err := dec.Decode(&obj); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, maxErr
		case errors.Is(err, io.EOF):
			return nil, entity.NewValidationError("body", "is required")
		default:
			return nil, entity.NewValidationError("body", "must be a JSON object")
		}
	}
	if obj == nil {
		return nil, entity.NewValidationError("body", "must be a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, entity.NewValidationError("body", "must contain a single JSON object")
	}
	return obj, nil
}

// rejectUnknown reports every member not in allowed, in key order.
func (o object) rejectUnknown(verr *violations, prefix string, allowed ...string) {
	var unknown []string
	for key := range o {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		verr.typeError(prefix+key, "is not a recognized field")
	}
}

// string decodes a nullable string member. Absent and null both leave dst nil.
func (o object) string(verr *violations, key string, dst **string) {
	o.value(verr, key, dst, "must be a string")
}

// nonNullString decodes a string member that may be absent but not null.
func (o object) nonNullString(verr *violations, key string, dst **string) {
	raw, ok := o[key]
	if ok && isNull(raw) {
		verr.typeError(key, "must not be null")
		return
	}
	o.string(verr, key, dst)
}

func (o object) value(verr *violations, key string, dst any, typeMsg string) {
	o.valueAt(verr, "", key, dst, typeMsg)
}

// valueAt decodes member key into dst, reporting a type error under prefix+key.
func (o object) valueAt(verr *violations, prefix, key string, dst any, typeMsg string) {
	raw, ok := o[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		verr.typeError(prefix+key, typeMsg)
	}
}

// messages decodes the messages array, rejecting unknown members per message.
// Elements that are not objects keep their slot so later indexes stay aligned.
func (o object) messages(verr *violations) []messageBody {
	raw, ok := o["messages"]
	if !ok || isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		verr.typeError("messages", "must be an array")
		return nil
	}

	out := make([]messageBody, len(items))
	for i, item := range items {
		path := fmt.Sprintf("messages[%d]", i)
		var m object
		if err := json.Unmarshal(item, &m); err != nil || m == nil {
			verr.typeError(path, "must be an object")
			continue
		}
		m.rejectUnknown(verr, path+".", "role", "content", "name")
		m.valueAt(verr, path+".", "role", &out[i].Role, "must be a string")
		m.valueAt(verr, path+".", "content", &out[i].Content, "must be a string or null")
		m.valueAt(verr, path+".", "name", &out[i].Name, "must be a string")
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
