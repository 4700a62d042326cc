// Package validation turns request payloads into field-level error lists.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid field. Field uses the JSON path of the
// value, e.g. "ingredients[0].unit".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
} // @name FieldError

// Errors accumulates field errors. A nil Errors means valid.
type Errors []FieldError

func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e *Errors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the process-wide validator. Field names it reports are
// taken from json tags.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its struct tags.
func Struct(v any) Errors {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return Errors{{Field: "", Message: err.Error()}}
	}

	out := make(Errors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, translate(fe))
	}
	return out
}

func translate(fe validator.FieldError) FieldError {
	field := fieldPath(fe.Namespace())
	label := fe.Field()

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", label)
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", label)
	case "max":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
		} else if fe.Kind() == reflect.Slice {
			msg = fmt.Sprintf("%s cannot have more than %s items", label, fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at most %s", label, fe.Param())
		}
	case "min":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		} else if fe.Kind() == reflect.Slice {
			msg = fmt.Sprintf("%s must have at least %s item(s)", label, fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at least %s", label, fe.Param())
		}
	case "gte":
		msg = fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		msg = fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gt":
		msg = fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = fmt.Sprintf("%s is invalid", label)
	}

	return FieldError{Field: field, Message: msg}
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}
