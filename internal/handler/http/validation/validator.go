// Package validation turns raw HTTP input into typed, checked use case input.
//
// Path and query values are parsed by hand; JSON bodies are decoded field by
// field so type errors and unknown fields are reported per field, then checked
// with go-playground/validator. Every violation found in one request is
// collected into a single *entity.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"article-hub/internal/domain/entity"
)

const (
	tagNotBlank        = "notblank"
	tagRequiredForRole = "required_for_role"
)

// requestValidator wraps the go-playground validator with the rules used by article requests.
type requestValidator struct {
	validate *validator.Validate
}

// newValidator creates a validator that reports fields by their JSON names.
func newValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterStructValidation(validateMessage, messageBody{})

	return &requestValidator{validate: v}
}

var bodyValidator = newValidator()

// validateMessage enforces role-dependent fields: system and user turns need content.
func validateMessage(sl validator.StructLevel) {
	m := sl.Current().Interface().(messageBody)
	if m.Role == nil || m.Content != nil {
		return
	}
	switch *m.Role {
	case roleSystem, roleUser:
		sl.ReportError(m.Content, "content", "Content", tagRequiredForRole, *m.Role)
	}
}

// check validates s and appends every violation to verr, skipping fields
// that already failed decoding.
func (v *requestValidator) check(s any, verr *violations) {
	err := v.validate.Struct(s)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("body", "is invalid")
		return
	}
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if verr.decodeFailed(field) {
			continue
		}
		verr.add(field, message(fe))
	}
}

// fieldPath strips the root struct name from a validator namespace.
// "generateBody.messages[0].role" becomes "messages[0].role".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case tagNotBlank:
		return "must not be empty"
	case tagRequiredForRole:
		return "is required for role " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return "is invalid"
	}
}

// violations accumulates field errors across decoding and struct validation.
type violations struct {
	entity.ValidationError
	failed []string // fields whose raw JSON could not be decoded
}

func (v *violations) add(field, msg string) {
	v.Add(field, msg)
}

// typeError records field as undecodable. Validator errors on the field or
// anything below it are then suppressed so it is reported once.
func (v *violations) typeError(field, msg string) {
	v.failed = append(v.failed, field)
	v.Add(field, msg)
}

func (v *violations) decodeFailed(field string) bool {
	for _, f := range v.failed {
		if field == f || strings.HasPrefix(field, f+".") || strings.HasPrefix(field, f+"[") {
			return true
		}
	}
	return false
}

// err returns the collected ValidationError, or nil when nothing was found.
func (v *violations) err() error {
	if !v.HasViolations() {
		return nil
	}
	return &entity.ValidationError{Violations: v.Violations}
}
